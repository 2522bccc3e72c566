package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"turismo/src/middlewares"
	"turismo/src/services"
	"turismo/src/types"

	"github.com/gin-gonic/gin"
	"github.com/yeqown/go-qrcode"
)

func reservaHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/reservas", func(ctx *gin.Context) {
			actor := middlewares.GetActor(ctx)
			data, err := services.GetAllReservas(actor)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		GET("/reservas/mis-reservas", func(ctx *gin.Context) {
			actor := middlewares.GetActor(ctx)
			data, err := services.GetMisReservas(actor)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		GET("/reservas/codigo/:codigo", func(ctx *gin.Context) {
			var params struct {
				Codigo string `uri:"codigo" binding:"required"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actor := middlewares.GetActor(ctx)
			data, err := services.GetReservaByCodigo(actor, params.Codigo)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data})
		}).
		GET("/reservas/plan/:planId", func(ctx *gin.Context) {
			var params struct {
				PlanID uint `uri:"planId" binding:"required"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actor := middlewares.GetActor(ctx)
			data, err := services.GetReservasByPlan(actor, params.PlanID)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		GET("/reservas/municipalidad/:municipalidadId", func(ctx *gin.Context) {
			var params struct {
				MunicipalidadID uint `uri:"municipalidadId" binding:"required"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actor := middlewares.GetActor(ctx)
			data, err := services.GetReservasByMunicipalidad(actor, params.MunicipalidadID)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		GET("/reservas/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actor := middlewares.GetActor(ctx)
			data, err := services.GetReservaByID(actor, params.ID)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data})
		}).
		GET("/reservas/:id/qr", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actor := middlewares.GetActor(ctx)
			data, err := services.GetReservaByID(actor, params.ID)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			qrc, err := qrcode.New(data.CodigoReserva)
			if err != nil {
				log.Printf("Error generating QR for %s: %s\n", data.CodigoReserva, err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			tmp := os.Getenv("TEMP_DIR")
			filePath := path.Join(tmp, fmt.Sprintf("%s.jpeg", data.CodigoReserva))
			if err := qrc.Save(filePath); err != nil {
				log.Printf("Error saving QR for %s: %s\n", data.CodigoReserva, err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			ctx.File(filePath)
		}).
		POST("/reservas", func(ctx *gin.Context) {
			var body types.CreateReservaRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actor := middlewares.GetActor(ctx)
			data, err := services.CrearReserva(actor, &body)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": data})
		}).
		PATCH("/reservas/:id/confirmar", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actor := middlewares.GetActor(ctx)
			data, err := services.ConfirmarReserva(actor, params.ID)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data})
		}).
		PATCH("/reservas/:id/cancelar", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CancelarReservaRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actor := middlewares.GetActor(ctx)
			data, err := services.CancelarReserva(actor, params.ID, body.Motivo)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data})
		}).
		PATCH("/reservas/:id/completar", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actor := middlewares.GetActor(ctx)
			data, err := services.CompletarReserva(actor, params.ID)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data})
		})
	return g
}
