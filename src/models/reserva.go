package models

import (
	"time"

	"turismo/src/types"
)

type Reserva struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	CodigoReserva  string    `gorm:"uniqueIndex" json:"codigo_reserva,omitempty"`
	PlanID         uint      `json:"plan_id,omitempty"`
	UsuarioID      uint      `json:"usuario_id,omitempty"`
	FechaInicio    time.Time `gorm:"type:date" json:"fecha_inicio,omitempty"`
	FechaFin       time.Time `gorm:"type:date" json:"fecha_fin,omitempty"`
	NumeroPersonas int       `json:"numero_personas,omitempty"`

	MontoTotal     float64 `json:"monto_total"`
	MontoDescuento float64 `gorm:"default:0" json:"monto_descuento"`
	MontoFinal     float64 `json:"monto_final"`

	Estado     types.EstadoReserva `gorm:"default:'PENDIENTE'" json:"estado,omitempty"`
	MetodoPago *types.MetodoPago   `json:"metodo_pago,omitempty"`

	Observaciones         string `json:"observaciones,omitempty"`
	SolicitudesEspeciales string `json:"solicitudes_especiales,omitempty"`
	ContactoEmergencia    string `json:"contacto_emergencia,omitempty"`
	TelefonoEmergencia    string `json:"telefono_emergencia,omitempty"`

	FechaReserva      time.Time  `gorm:"autoCreateTime" json:"fecha_reserva,omitempty"`
	FechaConfirmacion *time.Time `json:"fecha_confirmacion,omitempty"`
	FechaCancelacion  *time.Time `json:"fecha_cancelacion,omitempty"`
	MotivoCancelacion string     `json:"motivo_cancelacion,omitempty"`

	Plan    PlanTuristico `gorm:"foreignKey:plan_id" json:"plan,omitempty"`
	Usuario Usuario       `gorm:"foreignKey:usuario_id" json:"usuario,omitempty"`

	// Owned collections: dropping the reservation drops these with it.
	ServiciosPersonalizados []ReservaServicio `gorm:"foreignKey:reserva_id;constraint:OnDelete:CASCADE" json:"servicios_personalizados,omitempty"`
	Pagos                   []Pago            `gorm:"foreignKey:reserva_id;constraint:OnDelete:CASCADE" json:"pagos,omitempty"`
}

type ReservaServicio struct {
	ID                  uint                        `gorm:"primarykey" json:"id"`
	ReservaID           uint                        `json:"reserva_id,omitempty"`
	ServicioPlanID      uint                        `json:"servicio_plan_id,omitempty"`
	Incluido            bool                        `json:"incluido"`
	PrecioPersonalizado *float64                    `json:"precio_personalizado,omitempty"`
	Observaciones       string                      `json:"observaciones,omitempty"`
	Estado              types.EstadoServicioReserva `gorm:"default:'INCLUIDO'" json:"estado,omitempty"`

	Reserva      Reserva      `gorm:"foreignKey:reserva_id" json:"-"`
	ServicioPlan ServicioPlan `gorm:"foreignKey:servicio_plan_id" json:"servicio_plan,omitempty"`

	types.Timestamps
}
