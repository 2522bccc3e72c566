package main

import (
	"errors"
	"net/http"
	"turismo/src/services"

	"github.com/gin-gonic/gin"
)

// abortWithServiceError translates engine errors to wire statuses: missing
// resources 404, policy denials 403, state and capacity conflicts 409,
// unavailable plans 400. Anything else is a plain bad request.
func abortWithServiceError(ctx *gin.Context, err error) {
	var notFound *services.NotFoundError
	var estadoErr *services.InvalidStateError
	var capErr *services.CapacityError
	switch {
	case errors.As(err, &notFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.As(err, &estadoErr):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &capErr):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrPlanNoDisponible):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
