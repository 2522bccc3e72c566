package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"time"
	"turismo/src/db"
	libaws "turismo/src/lib/aws"
	"turismo/src/middlewares"
	"turismo/src/models"
	"turismo/src/policy"
	"turismo/src/services"
	"turismo/src/types"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// cargarPlan fetches a plan with the municipality preloaded so ownership
// checks can see the linked user.
func cargarPlan(id uint) (*models.PlanTuristico, error) {
	var plan models.PlanTuristico
	err := db.GetDb().
		Preload("Municipalidad").
		Preload("Servicios").
		Where(&models.PlanTuristico{ID: id}).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &services.NotFoundError{Resource: "Plan", Field: "id", Value: id}
		}
		return nil, err
	}
	return &plan, nil
}

func planSlug(tx *gorm.DB, nombre string) string {
	s := slug.Make(nombre)
	var count int64
	tx.Model(&models.PlanTuristico{}).Where("slug = ?", s).Count(&count)
	if count > 0 {
		s = fmt.Sprintf("%s-%d", s, time.Now().UnixMilli())
	}
	return s
}

func puedeCrearPlanes(actor policy.Actor) bool {
	return actor.EsAdmin() || actor.HasRole(types.ROL_MUNICIPALIDAD) || actor.HasRole(types.ROL_EMPRENDEDOR)
}

func planHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/planes", func(ctx *gin.Context) {
			actor := middlewares.GetActor(ctx)
			tx := db.GetDb().Preload("Municipalidad")
			// the public catalogue lists active plans only
			if !actor.EsAdmin() {
				tx = tx.Where(&models.PlanTuristico{Estado: types.PLAN_ACTIVO})
			}
			var planes []models.PlanTuristico
			if err := tx.Find(&planes).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": planes, "count": len(planes)})
		}).
		GET("/planes/mis-planes", func(ctx *gin.Context) {
			actor := middlewares.GetActor(ctx)
			var planes []models.PlanTuristico
			err := db.GetDb().
				Preload("Municipalidad").
				Where(&models.PlanTuristico{UsuarioCreadorID: actor.ID}).
				Find(&planes).Error
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": planes, "count": len(planes)})
		}).
		GET("/planes/municipalidad/:municipalidadId", func(ctx *gin.Context) {
			var params struct {
				MunicipalidadID uint `uri:"municipalidadId" binding:"required"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var planes []models.PlanTuristico
			err := db.GetDb().
				Preload("Municipalidad").
				Where(&models.PlanTuristico{MunicipalidadID: params.MunicipalidadID, Estado: types.PLAN_ACTIVO}).
				Find(&planes).Error
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": planes, "count": len(planes)})
		}).
		GET("/planes/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			plan, err := cargarPlan(params.ID)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": plan})
		}).
		POST("/planes", func(ctx *gin.Context) {
			actor := middlewares.GetActor(ctx)
			if !puedeCrearPlanes(actor) {
				ctx.JSON(http.StatusForbidden, gin.H{"error": services.ErrForbidden.Error()})
				return
			}
			var body types.CreatePlanRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var plan models.PlanTuristico
			err := db.GetDb().Transaction(func(tx *gorm.DB) error {
				var municipalidad models.Municipalidad
				if err := tx.Where(&models.Municipalidad{ID: body.MunicipalidadID}).First(&municipalidad).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return &services.NotFoundError{Resource: "Municipalidad", Field: "id", Value: body.MunicipalidadID}
					}
					return err
				}
				plan = models.PlanTuristico{
					Nombre:           body.Nombre,
					Slug:             planSlug(tx, body.Nombre),
					Descripcion:      body.Descripcion,
					PrecioTotal:      body.PrecioTotal,
					DuracionDias:     body.DuracionDias,
					CapacidadMaxima:  body.CapacidadMaxima,
					Estado:           types.PLAN_BORRADOR,
					NivelDificultad:  body.NivelDificultad,
					Itinerario:       body.Itinerario,
					Incluye:          body.Incluye,
					NoIncluye:        body.NoIncluye,
					Recomendaciones:  body.Recomendaciones,
					Requisitos:       body.Requisitos,
					MunicipalidadID:  municipalidad.ID,
					UsuarioCreadorID: actor.ID,
				}
				if err := tx.Create(&plan).Error; err != nil {
					return err
				}
				for _, sp := range body.Servicios {
					linea := models.ServicioPlan{
						PlanID:           plan.ID,
						ServicioID:       sp.ServicioID,
						DiaDelPlan:       sp.DiaDelPlan,
						OrdenEnElDia:     sp.OrdenEnElDia,
						HoraInicio:       sp.HoraInicio,
						HoraFin:          sp.HoraFin,
						PrecioEspecial:   sp.PrecioEspecial,
						Notas:            sp.Notas,
						EsOpcional:       sp.EsOpcional,
						EsPersonalizable: sp.EsPersonalizable,
					}
					if err := tx.Create(&linea).Error; err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			log.Printf("Plan %s creado por el usuario %d\n", plan.Slug, actor.ID)
			ctx.JSON(http.StatusCreated, gin.H{"data": plan})
		}).
		PUT("/planes/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreatePlanRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actor := middlewares.GetActor(ctx)
			plan, err := cargarPlan(params.ID)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			if !policy.PuedeGestionarPlan(actor, plan) {
				ctx.JSON(http.StatusForbidden, gin.H{"error": services.ErrForbidden.Error()})
				return
			}
			err = db.GetDb().Model(&models.PlanTuristico{}).
				Where(&models.PlanTuristico{ID: plan.ID}).
				Updates(map[string]any{
					"nombre":           body.Nombre,
					"descripcion":      body.Descripcion,
					"precio_total":     body.PrecioTotal,
					"duracion_dias":    body.DuracionDias,
					"capacidad_maxima": body.CapacidadMaxima,
					"nivel_dificultad": body.NivelDificultad,
					"itinerario":       body.Itinerario,
					"incluye":          body.Incluye,
					"no_incluye":       body.NoIncluye,
					"recomendaciones":  body.Recomendaciones,
					"requisitos":       body.Requisitos,
				}).Error
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actualizado, err := cargarPlan(plan.ID)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": actualizado})
		}).
		PATCH("/planes/:id/estado", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdatePlanEstadoRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actor := middlewares.GetActor(ctx)
			plan, err := cargarPlan(params.ID)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			if !policy.PuedeGestionarPlan(actor, plan) {
				ctx.JSON(http.StatusForbidden, gin.H{"error": services.ErrForbidden.Error()})
				return
			}
			err = db.GetDb().Model(&models.PlanTuristico{}).
				Where(&models.PlanTuristico{ID: plan.ID}).
				Updates(map[string]any{"estado": body.Estado}).Error
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			log.Printf("Plan %s pasa a %s\n", plan.Slug, body.Estado)
			plan.Estado = body.Estado
			ctx.JSON(http.StatusOK, gin.H{"data": plan})
		}).
		POST("/planes/:id/imagen", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			actor := middlewares.GetActor(ctx)
			plan, err := cargarPlan(params.ID)
			if err != nil {
				abortWithServiceError(ctx, err)
				return
			}
			if !policy.PuedeGestionarPlan(actor, plan) {
				ctx.JSON(http.StatusForbidden, gin.H{"error": services.ErrForbidden.Error()})
				return
			}
			file, err := ctx.FormFile("imagen")
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tmp := os.Getenv("TEMP_DIR")
			filePath := path.Join(tmp, fmt.Sprintf("%s.jpeg", plan.Slug))
			if err := ctx.SaveUploadedFile(file, filePath); err != nil {
				log.Printf("Error saving uploaded image for plan %s: %s\n", plan.Slug, err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			url, err := libaws.S3UploadAsset(fmt.Sprintf("planes/%s.jpeg", plan.Slug), filePath)
			if err != nil {
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "no se pudo subir la imagen"})
				return
			}
			err = db.GetDb().Model(&models.PlanTuristico{}).
				Where(&models.PlanTuristico{ID: plan.ID}).
				Updates(map[string]any{"imagen_principal_url": *url}).Error
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"imagen_principal_url": *url}})
		})
	return g
}
