package models

import "turismo/src/types"

type Emprendedor struct {
	ID              uint   `gorm:"primarykey" json:"id"`
	NombreEmpresa   string `json:"nombre_empresa,omitempty"`
	Rubro           string `json:"rubro,omitempty"`
	Direccion       string `json:"direccion,omitempty"`
	Telefono        string `json:"telefono,omitempty"`
	Email           string `json:"email,omitempty"`
	SitioWeb        string `json:"sitio_web,omitempty"`
	Descripcion     string `json:"descripcion,omitempty"`
	Productos       string `json:"productos,omitempty"`
	Servicios       string `json:"servicios,omitempty"`
	MunicipalidadID *uint  `json:"municipalidad_id,omitempty"`
	CategoriaID     *uint  `json:"categoria_id,omitempty"`
	UsuarioID       *uint  `gorm:"uniqueIndex" json:"usuario_id,omitempty"`

	Municipalidad *Municipalidad `gorm:"foreignKey:municipalidad_id" json:"municipalidad,omitempty"`
	Categoria     *Categoria     `gorm:"foreignKey:categoria_id" json:"categoria,omitempty"`
	Usuario       *Usuario       `gorm:"foreignKey:usuario_id" json:"-"`

	ServiciosTuristicos []ServicioTuristico `gorm:"foreignKey:emprendedor_id;constraint:OnDelete:CASCADE" json:"servicios_turisticos,omitempty"`

	types.Timestamps
}
