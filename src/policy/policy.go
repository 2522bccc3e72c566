package policy

import (
	"turismo/src/models"
	"turismo/src/types"
)

// Actor is the authenticated principal, threaded explicitly through every
// service call. There is no ambient "current user" anywhere in the process.
type Actor struct {
	ID    uint
	Roles []types.Rol
}

func (a Actor) HasRole(r types.Rol) bool {
	for _, v := range a.Roles {
		if v == r {
			return true
		}
	}
	return false
}

func (a Actor) EsAdmin() bool {
	return a.HasRole(types.ROL_ADMIN)
}

// EsPropietarioDelPlan: the plan's creator, or the user linked to the plan's
// municipality. The plan must carry a preloaded Municipalidad.
func EsPropietarioDelPlan(a Actor, plan *models.PlanTuristico) bool {
	return plan.EsPropietario(a.ID)
}

// PerteneceAMunicipalidad: a user belongs to a municipality iff they are its
// linked user.
func PerteneceAMunicipalidad(a Actor, m *models.Municipalidad) bool {
	return m.UsuarioID != nil && *m.UsuarioID == a.ID
}

// PuedeVerReserva gates single-reservation reads: the reservation's own
// creator, an admin, or the plan's owner.
func PuedeVerReserva(a Actor, r *models.Reserva) bool {
	if r.UsuarioID == a.ID || a.EsAdmin() {
		return true
	}
	return EsPropietarioDelPlan(a, &r.Plan)
}

// PuedeListarTodas gates the global listing. Everyone else gets a denial,
// not an empty result.
func PuedeListarTodas(a Actor) bool {
	return a.EsAdmin()
}

func PuedeVerReservasDelPlan(a Actor, plan *models.PlanTuristico) bool {
	return a.EsAdmin() || EsPropietarioDelPlan(a, plan)
}

func PuedeVerReservasDeMunicipalidad(a Actor, m *models.Municipalidad) bool {
	return a.EsAdmin() || PerteneceAMunicipalidad(a, m)
}

func PuedeConfirmarReserva(a Actor, plan *models.PlanTuristico) bool {
	return a.EsAdmin() || EsPropietarioDelPlan(a, plan)
}

func PuedeCompletarReserva(a Actor, plan *models.PlanTuristico) bool {
	return a.EsAdmin() || EsPropietarioDelPlan(a, plan)
}

// PuedeCancelarReserva: the reservation's creator may cancel their own;
// the plan owner and admins may cancel any.
func PuedeCancelarReserva(a Actor, r *models.Reserva) bool {
	if r.UsuarioID == a.ID || a.EsAdmin() {
		return true
	}
	return EsPropietarioDelPlan(a, &r.Plan)
}

func PuedeGestionarPlan(a Actor, plan *models.PlanTuristico) bool {
	return a.EsAdmin() || EsPropietarioDelPlan(a, plan)
}
