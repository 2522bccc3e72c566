package models

import (
	"turismo/src/types"
)

type Usuario struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Nombre   string `json:"nombre,omitempty"`
	Apellido string `json:"apellido,omitempty"`
	Username string `gorm:"uniqueIndex" json:"username,omitempty"`
	Email    string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password string `json:"-"`

	Roles    []Rol     `gorm:"many2many:usuario_roles;" json:"roles,omitempty"`
	Reservas []Reserva `gorm:"foreignKey:usuario_id" json:"reservas,omitempty"`

	types.Timestamps
}

// RolNames flattens the association into the typed set the policy layer uses.
func (u *Usuario) RolNames() []types.Rol {
	roles := make([]types.Rol, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, r.Nombre)
	}
	return roles
}

type Rol struct {
	Nombre types.Rol `gorm:"primarykey" json:"nombre"`
}
