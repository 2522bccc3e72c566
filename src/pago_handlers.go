package main

import (
	"net/http"
	"turismo/src/middlewares"
	"turismo/src/services"
	"turismo/src/types"

	"github.com/gin-gonic/gin"
)

func pagoHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/pagos", func(ctx *gin.Context) {
			var body types.CreatePagoRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actor := middlewares.GetActor(ctx)
			data, err := services.RegistrarPago(actor, &body)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": data})
		}).
		GET("/pagos/mis-pagos", func(ctx *gin.Context) {
			actor := middlewares.GetActor(ctx)
			data, err := services.GetMisPagos(actor)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		GET("/pagos/reserva/:reservaId", func(ctx *gin.Context) {
			var params struct {
				ReservaID uint `uri:"reservaId" binding:"required"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actor := middlewares.GetActor(ctx)
			data, err := services.GetPagosByReserva(actor, params.ReservaID)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		GET("/pagos/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actor := middlewares.GetActor(ctx)
			data, err := services.GetPagoByID(actor, params.ID)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data})
		}).
		PATCH("/pagos/:id/confirmar", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actor := middlewares.GetActor(ctx)
			data, err := services.ConfirmarPago(actor, params.ID)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data})
		}).
		PATCH("/pagos/:id/rechazar", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actor := middlewares.GetActor(ctx)
			data, err := services.RechazarPago(actor, params.ID)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data})
		})
	return g
}
