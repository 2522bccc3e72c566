package models

import "turismo/src/types"

type Categoria struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Nombre      string `gorm:"uniqueIndex" json:"nombre,omitempty"`
	Descripcion string `json:"descripcion,omitempty"`

	types.Timestamps
}
