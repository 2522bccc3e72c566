package middlewares

import (
	"log"
	"os"
	"strconv"
	"strings"
	"turismo/src/db"
	"turismo/src/models"
	"turismo/src/policy"
	"turismo/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

// AuthMiddleware validates the bearer token, resolves the user row and its
// roles, and sets the typed actor every handler reads from the context.
func AuthMiddleware(ctx *gin.Context) {
	bearerToken := ctx.Request.Header.Get("Authorization")
	if !strings.HasPrefix(bearerToken, "Bearer") {
		ctx.AbortWithStatus(401)
		return
	}
	parts := strings.Split(bearerToken, " ")
	if len(parts) < 2 || parts[1] == "" {
		ctx.AbortWithStatus(401)
		return
	}
	reqToken := parts[1]
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(reqToken, claims, func(t *jwt.Token) (any, error) {
		return jwtKey, nil
	})
	if err != nil {
		log.Printf("token error: %s\n", err.Error())
		if err == jwt.ErrSignatureInvalid || err == jwt.ErrTokenMalformed {
			ctx.AbortWithStatus(401)
			return
		}
		ctx.AbortWithError(401, err)
		return
	}
	if !tkn.Valid {
		ctx.AbortWithStatus(401)
		return
	}

	uid, err := strconv.Atoi(claims.Subject)
	if err != nil {
		log.Println("error parsing claims:", err.Error())
		ctx.AbortWithStatus(401)
		return
	}
	var usuario models.Usuario
	db.GetDb().Preload("Roles").Where(&models.Usuario{ID: uint(uid)}).Find(&usuario)
	if uint(uid) != usuario.ID || usuario.ID < 1 {
		ctx.AbortWithStatus(401)
		return
	}
	ctx.Set("id", usuario.ID)
	ctx.Set("username", usuario.Username)
	ctx.Set("email", usuario.Email)
	ctx.Set("actor", policy.Actor{ID: usuario.ID, Roles: usuario.RolNames()})
}

// GetActor reads the actor AuthMiddleware stored on the context.
func GetActor(ctx *gin.Context) policy.Actor {
	actor, _ := ctx.Get("actor")
	a, ok := actor.(policy.Actor)
	if !ok {
		return policy.Actor{}
	}
	return a
}
