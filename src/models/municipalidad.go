package models

import "turismo/src/types"

type Municipalidad struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Nombre       string `json:"nombre,omitempty"`
	Departamento string `json:"departamento,omitempty"`
	Provincia    string `json:"provincia,omitempty"`
	Distrito     string `json:"distrito,omitempty"`
	Direccion    string `json:"direccion,omitempty"`
	Telefono     string `json:"telefono,omitempty"`
	SitioWeb     string `json:"sitio_web,omitempty"`
	Descripcion  string `json:"descripcion,omitempty"`
	UsuarioID    *uint  `gorm:"uniqueIndex" json:"usuario_id,omitempty"`

	Usuario       *Usuario        `gorm:"foreignKey:usuario_id" json:"usuario,omitempty"`
	Emprendedores []Emprendedor   `gorm:"foreignKey:municipalidad_id" json:"emprendedores,omitempty"`
	Planes        []PlanTuristico `gorm:"foreignKey:municipalidad_id" json:"planes,omitempty"`

	types.Timestamps
}
