package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"
	"turismo/src/db"
	"turismo/src/models"
	"turismo/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

func generateToken(usuario *models.Usuario) (string, error) {
	claims := &types.Claims{
		Username: usuario.Username,
		Roles:    usuario.RolNames(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(usuario.ID), 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func authResponse(usuario *models.Usuario) (*types.AuthResponse, error) {
	token, err := generateToken(usuario)
	if err != nil {
		return nil, err
	}
	return &types.AuthResponse{
		Token:     token,
		TokenType: "Bearer",
		ID:        usuario.ID,
		Username:  usuario.Username,
		Email:     usuario.Email,
		Roles:     usuario.RolNames(),
	}, nil
}

func AuthRegister(ctx *gin.Context) (*types.AuthResponse, int, error) {
	var body types.RegisterRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	roles := body.Roles
	if len(roles) == 0 {
		roles = []types.Rol{types.ROL_USER}
	}
	for _, r := range roles {
		if !r.Valid() {
			return nil, http.StatusBadRequest, fmt.Errorf("rol desconocido: %s", r)
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	var usuario models.Usuario
	gdb := db.GetDb()
	err = gdb.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Usuario{}).Where("username = ? OR email = ?", body.Username, body.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.New("el username o email ya esta registrado")
		}
		usuario = models.Usuario{
			Nombre:   body.Nombre,
			Apellido: body.Apellido,
			Username: body.Username,
			Email:    body.Email,
			Password: string(hash),
		}
		if err := tx.Create(&usuario).Error; err != nil {
			return err
		}
		for _, r := range roles {
			rol := models.Rol{Nombre: r}
			if err := tx.FirstOrCreate(&rol, rol).Error; err != nil {
				return err
			}
			if err := tx.Model(&usuario).Association("Roles").Append(&rol); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	res, err := authResponse(&usuario)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return res, http.StatusCreated, nil
}

func AuthLogin(ctx *gin.Context) (*types.AuthResponse, int, error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	var usuario models.Usuario
	if err := db.GetDb().Preload("Roles").Where(&models.Usuario{Username: body.Username}).First(&usuario).Error; err != nil {
		return nil, http.StatusUnauthorized, errors.New("credenciales invalidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(body.Password)); err != nil {
		return nil, http.StatusUnauthorized, errors.New("credenciales invalidas")
	}
	res, err := authResponse(&usuario)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return res, http.StatusOK, nil
}
