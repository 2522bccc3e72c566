package main

import (
	"errors"
	"net/http"
	"turismo/src/db"
	"turismo/src/middlewares"
	"turismo/src/models"
	"turismo/src/services"
	"turismo/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func categoriaHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/categorias", func(ctx *gin.Context) {
			var categorias []models.Categoria
			if err := db.GetDb().Find(&categorias).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": categorias, "count": len(categorias)})
		}).
		GET("/categorias/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var categoria models.Categoria
			if err := db.GetDb().Where(&models.Categoria{ID: params.ID}).First(&categoria).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					abortWithServiceError(ctx, &services.NotFoundError{Resource: "Categoria", Field: "id", Value: params.ID})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": categoria})
		}).
		POST("/categorias", func(ctx *gin.Context) {
			actor := middlewares.GetActor(ctx)
			if !actor.EsAdmin() {
				ctx.JSON(http.StatusForbidden, gin.H{"error": services.ErrForbidden.Error()})
				return
			}
			var body types.CreateCategoriaRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			categoria := models.Categoria{Nombre: body.Nombre, Descripcion: body.Descripcion}
			if err := db.GetDb().Create(&categoria).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": categoria})
		})
	return g
}
