package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"turismo/src/models"
	"turismo/src/types"
)

func usuarioID(id uint) *uint { return &id }

func TestHasRole(t *testing.T) {
	actor := Actor{ID: 1, Roles: []types.Rol{types.ROL_USER, types.ROL_EMPRENDEDOR}}
	assert.True(t, actor.HasRole(types.ROL_USER))
	assert.True(t, actor.HasRole(types.ROL_EMPRENDEDOR))
	assert.False(t, actor.HasRole(types.ROL_ADMIN))
	assert.False(t, actor.EsAdmin())
	assert.True(t, Actor{ID: 2, Roles: []types.Rol{types.ROL_ADMIN}}.EsAdmin())
}

func TestEsPropietarioDelPlan(t *testing.T) {
	plan := &models.PlanTuristico{
		UsuarioCreadorID: 10,
		Municipalidad:    models.Municipalidad{UsuarioID: usuarioID(20)},
	}
	assert.True(t, EsPropietarioDelPlan(Actor{ID: 10}, plan), "the creator owns the plan")
	assert.True(t, EsPropietarioDelPlan(Actor{ID: 20}, plan), "the municipality's linked user owns the plan")
	assert.False(t, EsPropietarioDelPlan(Actor{ID: 30}, plan))

	sinLink := &models.PlanTuristico{UsuarioCreadorID: 10}
	assert.False(t, EsPropietarioDelPlan(Actor{ID: 20}, sinLink), "an unlinked municipality confers nothing")
}

func TestPuedeVerReserva(t *testing.T) {
	reserva := &models.Reserva{
		UsuarioID: 5,
		Plan: models.PlanTuristico{
			UsuarioCreadorID: 10,
			Municipalidad:    models.Municipalidad{UsuarioID: usuarioID(20)},
		},
	}
	admin := Actor{ID: 99, Roles: []types.Rol{types.ROL_ADMIN}}

	assert.True(t, PuedeVerReserva(Actor{ID: 5}, reserva), "holder")
	assert.True(t, PuedeVerReserva(Actor{ID: 10}, reserva), "plan creator")
	assert.True(t, PuedeVerReserva(Actor{ID: 20}, reserva), "municipality user")
	assert.True(t, PuedeVerReserva(admin, reserva), "admin")
	assert.False(t, PuedeVerReserva(Actor{ID: 7, Roles: []types.Rol{types.ROL_USER}}, reserva), "stranger")
}

func TestPuedeListarTodas(t *testing.T) {
	assert.True(t, PuedeListarTodas(Actor{Roles: []types.Rol{types.ROL_ADMIN}}))
	assert.False(t, PuedeListarTodas(Actor{Roles: []types.Rol{types.ROL_MUNICIPALIDAD}}))
	assert.False(t, PuedeListarTodas(Actor{Roles: []types.Rol{types.ROL_USER}}))
	assert.False(t, PuedeListarTodas(Actor{}))
}

func TestTransicionesDePropietario(t *testing.T) {
	plan := &models.PlanTuristico{UsuarioCreadorID: 10}
	admin := Actor{ID: 99, Roles: []types.Rol{types.ROL_ADMIN}}
	dueno := Actor{ID: 10, Roles: []types.Rol{types.ROL_MUNICIPALIDAD}}
	turista := Actor{ID: 5, Roles: []types.Rol{types.ROL_USER}}

	assert.True(t, PuedeConfirmarReserva(admin, plan))
	assert.True(t, PuedeConfirmarReserva(dueno, plan))
	assert.False(t, PuedeConfirmarReserva(turista, plan), "holders do not confirm their own reservations")

	assert.True(t, PuedeCompletarReserva(dueno, plan))
	assert.False(t, PuedeCompletarReserva(turista, plan))

	assert.True(t, PuedeVerReservasDelPlan(dueno, plan))
	assert.False(t, PuedeVerReservasDelPlan(turista, plan))
}

func TestPuedeCancelarReserva(t *testing.T) {
	reserva := &models.Reserva{UsuarioID: 5, Plan: models.PlanTuristico{UsuarioCreadorID: 10}}
	assert.True(t, PuedeCancelarReserva(Actor{ID: 5}, reserva), "the holder cancels their own")
	assert.True(t, PuedeCancelarReserva(Actor{ID: 10}, reserva), "the plan owner cancels any against the plan")
	assert.True(t, PuedeCancelarReserva(Actor{ID: 99, Roles: []types.Rol{types.ROL_ADMIN}}, reserva))
	assert.False(t, PuedeCancelarReserva(Actor{ID: 7}, reserva))
}

func TestPerteneceAMunicipalidad(t *testing.T) {
	m := &models.Municipalidad{UsuarioID: usuarioID(20)}
	assert.True(t, PerteneceAMunicipalidad(Actor{ID: 20}, m))
	assert.False(t, PerteneceAMunicipalidad(Actor{ID: 21}, m))
	assert.False(t, PerteneceAMunicipalidad(Actor{ID: 20}, &models.Municipalidad{}), "no linked user, no membership")

	assert.True(t, PuedeVerReservasDeMunicipalidad(Actor{ID: 20}, m))
	assert.True(t, PuedeVerReservasDeMunicipalidad(Actor{ID: 1, Roles: []types.Rol{types.ROL_ADMIN}}, m))
	assert.False(t, PuedeVerReservasDeMunicipalidad(Actor{ID: 21, Roles: []types.Rol{types.ROL_MUNICIPALIDAD}}, m), "the role alone is not membership")
}
