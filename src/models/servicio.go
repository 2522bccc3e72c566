package models

import "turismo/src/types"

type ServicioTuristico struct {
	ID              uint                 `gorm:"primarykey" json:"id"`
	Nombre          string               `json:"nombre,omitempty"`
	Descripcion     string               `json:"descripcion,omitempty"`
	Precio          float64              `json:"precio"`
	DuracionHoras   int                  `json:"duracion_horas,omitempty"`
	CapacidadMaxima int                  `json:"capacidad_maxima,omitempty"`
	Tipo            types.TipoServicio   `json:"tipo,omitempty"`
	Estado          types.EstadoServicio `gorm:"default:'ACTIVO'" json:"estado,omitempty"`
	Ubicacion       string               `json:"ubicacion,omitempty"`
	Requisitos      string               `json:"requisitos,omitempty"`
	Incluye         string               `json:"incluye,omitempty"`
	NoIncluye       string               `json:"no_incluye,omitempty"`
	ImagenURL       string               `json:"imagen_url,omitempty"`
	EmprendedorID   uint                 `json:"emprendedor_id,omitempty"`

	Emprendedor Emprendedor `gorm:"foreignKey:emprendedor_id" json:"emprendedor,omitempty"`

	types.Timestamps
}
