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

func municipalidadHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/municipalidades", func(ctx *gin.Context) {
			var municipalidades []models.Municipalidad
			if err := db.GetDb().Find(&municipalidades).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": municipalidades, "count": len(municipalidades)})
		}).
		GET("/municipalidades/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var municipalidad models.Municipalidad
			err := db.GetDb().
				Preload("Emprendedores").
				Where(&models.Municipalidad{ID: params.ID}).
				First(&municipalidad).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					abortWithServiceError(ctx, &services.NotFoundError{Resource: "Municipalidad", Field: "id", Value: params.ID})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": municipalidad})
		}).
		POST("/municipalidades", func(ctx *gin.Context) {
			actor := middlewares.GetActor(ctx)
			if !actor.EsAdmin() && !actor.HasRole(types.ROL_MUNICIPALIDAD) {
				ctx.JSON(http.StatusForbidden, gin.H{"error": services.ErrForbidden.Error()})
				return
			}
			var body types.CreateMunicipalidadRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			usuarioID := actor.ID
			municipalidad := models.Municipalidad{
				Nombre:       body.Nombre,
				Departamento: body.Departamento,
				Provincia:    body.Provincia,
				Distrito:     body.Distrito,
				Direccion:    body.Direccion,
				Telefono:     body.Telefono,
				SitioWeb:     body.SitioWeb,
				Descripcion:  body.Descripcion,
				UsuarioID:    &usuarioID,
			}
			if err := db.GetDb().Create(&municipalidad).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": municipalidad})
		})
	return g
}
