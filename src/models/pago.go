package models

import (
	"time"

	"turismo/src/types"
)

type Pago struct {
	ID                 uint             `gorm:"primarykey" json:"id"`
	CodigoPago         string           `gorm:"uniqueIndex" json:"codigo_pago,omitempty"`
	ReservaID          uint             `json:"reserva_id,omitempty"`
	Monto              float64          `json:"monto"`
	Tipo               types.TipoPago   `json:"tipo,omitempty"`
	Estado             types.EstadoPago `gorm:"default:'PENDIENTE'" json:"estado,omitempty"`
	MetodoPago         types.MetodoPago `json:"metodo_pago,omitempty"`
	NumeroTransaccion  string           `json:"numero_transaccion,omitempty"`
	NumeroAutorizacion string           `json:"numero_autorizacion,omitempty"`
	Observaciones      string           `json:"observaciones,omitempty"`
	FechaPago          time.Time        `gorm:"autoCreateTime" json:"fecha_pago,omitempty"`
	FechaConfirmacion  *time.Time       `json:"fecha_confirmacion,omitempty"`

	Reserva Reserva `gorm:"foreignKey:reserva_id" json:"-"`
}
