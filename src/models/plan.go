package models

import "turismo/src/types"

type PlanTuristico struct {
	ID                 uint                  `gorm:"primarykey" json:"id"`
	Nombre             string                `json:"nombre,omitempty"`
	Slug               string                `gorm:"uniqueIndex" json:"slug,omitempty"`
	Descripcion        string                `json:"descripcion,omitempty"`
	PrecioTotal        float64               `json:"precio_total"`
	DuracionDias       int                   `json:"duracion_dias"`
	CapacidadMaxima    int                   `json:"capacidad_maxima"`
	Estado             types.EstadoPlan      `gorm:"default:'BORRADOR'" json:"estado,omitempty"`
	NivelDificultad    types.NivelDificultad `gorm:"default:'FACIL'" json:"nivel_dificultad,omitempty"`
	ImagenPrincipalURL string                `json:"imagen_principal_url,omitempty"`
	Itinerario         string                `json:"itinerario,omitempty"`
	Incluye            string                `json:"incluye,omitempty"`
	NoIncluye          string                `json:"no_incluye,omitempty"`
	Recomendaciones    string                `json:"recomendaciones,omitempty"`
	Requisitos         string                `json:"requisitos,omitempty"`
	MunicipalidadID    uint                  `json:"municipalidad_id,omitempty"`
	UsuarioCreadorID   uint                  `json:"usuario_creador_id,omitempty"`

	Municipalidad  Municipalidad  `gorm:"foreignKey:municipalidad_id" json:"municipalidad,omitempty"`
	UsuarioCreador Usuario        `gorm:"foreignKey:usuario_creador_id" json:"usuario_creador,omitempty"`
	Servicios      []ServicioPlan `gorm:"foreignKey:plan_id;constraint:OnDelete:CASCADE" json:"servicios,omitempty"`

	types.Timestamps
}

// EsPropietario reports whether the given user owns the plan: its creator,
// or the user linked to the plan's municipality. Municipalidad must be
// preloaded for the second half of the check to see the link.
func (p *PlanTuristico) EsPropietario(usuarioID uint) bool {
	if p.UsuarioCreadorID == usuarioID {
		return true
	}
	return p.Municipalidad.UsuarioID != nil && *p.Municipalidad.UsuarioID == usuarioID
}

type ServicioPlan struct {
	ID               uint     `gorm:"primarykey" json:"id"`
	PlanID           uint     `json:"plan_id,omitempty"`
	ServicioID       uint     `json:"servicio_id,omitempty"`
	DiaDelPlan       int      `json:"dia_del_plan,omitempty"`
	OrdenEnElDia     int      `json:"orden_en_el_dia,omitempty"`
	HoraInicio       string   `json:"hora_inicio,omitempty"`
	HoraFin          string   `json:"hora_fin,omitempty"`
	PrecioEspecial   *float64 `json:"precio_especial,omitempty"`
	Notas            string   `json:"notas,omitempty"`
	EsOpcional       bool     `json:"es_opcional,omitempty"`
	EsPersonalizable bool     `json:"es_personalizable,omitempty"`

	Plan     PlanTuristico     `gorm:"foreignKey:plan_id" json:"-"`
	Servicio ServicioTuristico `gorm:"foreignKey:servicio_id" json:"servicio,omitempty"`

	types.Timestamps
}
