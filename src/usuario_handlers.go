package main

import (
	"net/http"
	"turismo/src/db"
	"turismo/src/middlewares"
	"turismo/src/models"
	"turismo/src/services"
	"turismo/src/types"

	"github.com/gin-gonic/gin"
)

func usuarioHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/usuarios", func(ctx *gin.Context) {
			actor := middlewares.GetActor(ctx)
			if !actor.EsAdmin() {
				ctx.JSON(http.StatusForbidden, gin.H{"error": services.ErrForbidden.Error()})
				return
			}
			var usuarios []models.Usuario
			if err := db.GetDb().Preload("Roles").Find(&usuarios).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": usuarios, "count": len(usuarios)})
		}).
		GET("/usuarios/me", func(ctx *gin.Context) {
			actor := middlewares.GetActor(ctx)
			var usuario models.Usuario
			if err := db.GetDb().Preload("Roles").Where(&models.Usuario{ID: actor.ID}).First(&usuario).Error; err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": types.UsuarioBasicResponse{
				ID:       usuario.ID,
				Nombre:   usuario.Nombre,
				Apellido: usuario.Apellido,
				Username: usuario.Username,
				Email:    usuario.Email,
			}})
		})
	return g
}
