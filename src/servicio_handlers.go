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

func servicioHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/servicios", func(ctx *gin.Context) {
			var servicios []models.ServicioTuristico
			err := db.GetDb().
				Preload("Emprendedor").
				Where(&models.ServicioTuristico{Estado: types.SERVICIO_ACTIVO}).
				Find(&servicios).Error
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": servicios, "count": len(servicios)})
		}).
		GET("/servicios/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var servicio models.ServicioTuristico
			err := db.GetDb().
				Preload("Emprendedor").
				Where(&models.ServicioTuristico{ID: params.ID}).
				First(&servicio).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					abortWithServiceError(ctx, &services.NotFoundError{Resource: "Servicio", Field: "id", Value: params.ID})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": servicio})
		}).
		GET("/servicios/emprendedor/:emprendedorId", func(ctx *gin.Context) {
			var params struct {
				EmprendedorID uint `uri:"emprendedorId" binding:"required"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var servicios []models.ServicioTuristico
			err := db.GetDb().
				Where(&models.ServicioTuristico{EmprendedorID: params.EmprendedorID}).
				Find(&servicios).Error
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": servicios, "count": len(servicios)})
		}).
		POST("/servicios", func(ctx *gin.Context) {
			actor := middlewares.GetActor(ctx)
			var body types.CreateServicioRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			// services hang off the actor's entrepreneur profile
			var emprendedor models.Emprendedor
			err := db.GetDb().
				Where(&models.Emprendedor{UsuarioID: &actor.ID}).
				First(&emprendedor).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusForbidden, gin.H{"error": services.ErrForbidden.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			servicio := models.ServicioTuristico{
				Nombre:          body.Nombre,
				Descripcion:     body.Descripcion,
				Precio:          body.Precio,
				DuracionHoras:   body.DuracionHoras,
				CapacidadMaxima: body.CapacidadMaxima,
				Tipo:            body.Tipo,
				Estado:          types.SERVICIO_ACTIVO,
				Ubicacion:       body.Ubicacion,
				Requisitos:      body.Requisitos,
				Incluye:         body.Incluye,
				NoIncluye:       body.NoIncluye,
				ImagenURL:       body.ImagenURL,
				EmprendedorID:   emprendedor.ID,
			}
			if err := db.GetDb().Create(&servicio).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": servicio})
		})
	return g
}
