package types

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type Claims struct {
	Username string `json:"username"`
	Roles    []Rol  `json:"roles"`
	jwt.RegisteredClaims
}

// Rol is the closed set of authorities the policy package understands.
// Role checks are typed; no free-form string comparison at call sites.
type Rol string

const (
	ROL_ADMIN         Rol = "ROLE_ADMIN"
	ROL_USER          Rol = "ROLE_USER"
	ROL_EMPRENDEDOR   Rol = "ROLE_EMPRENDEDOR"
	ROL_MUNICIPALIDAD Rol = "ROLE_MUNICIPALIDAD"
)

func (r Rol) Valid() bool {
	switch r {
	case ROL_ADMIN, ROL_USER, ROL_EMPRENDEDOR, ROL_MUNICIPALIDAD:
		return true
	}
	return false
}

type EstadoReserva string

const (
	RESERVA_PENDIENTE  EstadoReserva = "PENDIENTE"
	RESERVA_CONFIRMADA EstadoReserva = "CONFIRMADA"
	RESERVA_PAGADA     EstadoReserva = "PAGADA"
	RESERVA_EN_PROCESO EstadoReserva = "EN_PROCESO"
	RESERVA_COMPLETADA EstadoReserva = "COMPLETADA"
	RESERVA_CANCELADA  EstadoReserva = "CANCELADA"
	RESERVA_NO_SHOW    EstadoReserva = "NO_SHOW"
)

type MetodoPago string

const (
	PAGO_EFECTIVO        MetodoPago = "EFECTIVO"
	PAGO_TARJETA_CREDITO MetodoPago = "TARJETA_CREDITO"
	PAGO_TARJETA_DEBITO  MetodoPago = "TARJETA_DEBITO"
	PAGO_TRANSFERENCIA   MetodoPago = "TRANSFERENCIA"
	PAGO_MOVIL           MetodoPago = "PAGO_MOVIL"
	PAGO_PAYPAL          MetodoPago = "PAYPAL"
	PAGO_OTRO            MetodoPago = "OTRO"
)

type EstadoPlan string

const (
	PLAN_BORRADOR   EstadoPlan = "BORRADOR"
	PLAN_ACTIVO     EstadoPlan = "ACTIVO"
	PLAN_INACTIVO   EstadoPlan = "INACTIVO"
	PLAN_AGOTADO    EstadoPlan = "AGOTADO"
	PLAN_SUSPENDIDO EstadoPlan = "SUSPENDIDO"
)

type NivelDificultad string

const (
	DIFICULTAD_FACIL    NivelDificultad = "FACIL"
	DIFICULTAD_MODERADO NivelDificultad = "MODERADO"
	DIFICULTAD_DIFICIL  NivelDificultad = "DIFICIL"
	DIFICULTAD_EXTREMO  NivelDificultad = "EXTREMO"
)

type EstadoServicioReserva string

const (
	SERVICIO_RESERVA_INCLUIDO      EstadoServicioReserva = "INCLUIDO"
	SERVICIO_RESERVA_EXCLUIDO      EstadoServicioReserva = "EXCLUIDO"
	SERVICIO_RESERVA_PERSONALIZADO EstadoServicioReserva = "PERSONALIZADO"
	SERVICIO_RESERVA_PENDIENTE     EstadoServicioReserva = "PENDIENTE_CONFIRMACION"
)

type TipoPago string

const (
	TIPO_PAGO_SENA       TipoPago = "SENA"
	TIPO_PAGO_COMPLETO   TipoPago = "PAGO_COMPLETO"
	TIPO_PAGO_PARCIAL    TipoPago = "PAGO_PARCIAL"
	TIPO_SALDO_PENDIENTE TipoPago = "SALDO_PENDIENTE"
)

type EstadoPago string

const (
	PAGO_PENDIENTE   EstadoPago = "PENDIENTE"
	PAGO_PROCESANDO  EstadoPago = "PROCESANDO"
	PAGO_CONFIRMADO  EstadoPago = "CONFIRMADO"
	PAGO_FALLIDO     EstadoPago = "FALLIDO"
	PAGO_REEMBOLSADO EstadoPago = "REEMBOLSADO"
	PAGO_CANCELADO   EstadoPago = "CANCELADO"
)

type TipoServicio string

const (
	SERVICIO_ALOJAMIENTO  TipoServicio = "ALOJAMIENTO"
	SERVICIO_TRANSPORTE   TipoServicio = "TRANSPORTE"
	SERVICIO_ALIMENTACION TipoServicio = "ALIMENTACION"
	SERVICIO_GUIA         TipoServicio = "GUIA_TURISTICO"
	SERVICIO_ACTIVIDAD    TipoServicio = "ACTIVIDAD_RECREATIVA"
	SERVICIO_TOUR         TipoServicio = "TOUR"
	SERVICIO_AVENTURA     TipoServicio = "AVENTURA"
	SERVICIO_CULTURAL     TipoServicio = "CULTURAL"
	SERVICIO_GASTRONOMICO TipoServicio = "GASTRONOMICO"
	SERVICIO_WELLNESS     TipoServicio = "WELLNESS"
	SERVICIO_OTRO         TipoServicio = "OTRO"
)

type EstadoServicio string

const (
	SERVICIO_ACTIVO        EstadoServicio = "ACTIVO"
	SERVICIO_INACTIVO      EstadoServicio = "INACTIVO"
	SERVICIO_AGOTADO       EstadoServicio = "AGOTADO"
	SERVICIO_MANTENIMIENTO EstadoServicio = "MANTENIMIENTO"
)

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}
