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

func emprendedorHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/emprendedores", func(ctx *gin.Context) {
			var emprendedores []models.Emprendedor
			err := db.GetDb().
				Preload("Categoria").
				Preload("Municipalidad").
				Find(&emprendedores).Error
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": emprendedores, "count": len(emprendedores)})
		}).
		GET("/emprendedores/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var emprendedor models.Emprendedor
			err := db.GetDb().
				Preload("Categoria").
				Preload("Municipalidad").
				Preload("ServiciosTuristicos").
				Where(&models.Emprendedor{ID: params.ID}).
				First(&emprendedor).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					abortWithServiceError(ctx, &services.NotFoundError{Resource: "Emprendedor", Field: "id", Value: params.ID})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": emprendedor})
		}).
		POST("/emprendedores", func(ctx *gin.Context) {
			actor := middlewares.GetActor(ctx)
			if !actor.EsAdmin() && !actor.HasRole(types.ROL_EMPRENDEDOR) {
				ctx.JSON(http.StatusForbidden, gin.H{"error": services.ErrForbidden.Error()})
				return
			}
			var body types.CreateEmprendedorRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			usuarioID := actor.ID
			emprendedor := models.Emprendedor{
				NombreEmpresa: body.NombreEmpresa,
				Rubro:         body.Rubro,
				Direccion:     body.Direccion,
				Telefono:      body.Telefono,
				Email:         body.Email,
				SitioWeb:      body.SitioWeb,
				Descripcion:   body.Descripcion,
				Productos:     body.Productos,
				Servicios:     body.Servicios,
				UsuarioID:     &usuarioID,
			}
			if body.MunicipalidadID > 0 {
				emprendedor.MunicipalidadID = &body.MunicipalidadID
			}
			if body.CategoriaID > 0 {
				emprendedor.CategoriaID = &body.CategoriaID
			}
			if err := db.GetDb().Create(&emprendedor).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": emprendedor})
		})
	return g
}
