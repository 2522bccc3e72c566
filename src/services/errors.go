package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrForbidden covers every policy denial. It is deliberately distinct from
// NotFoundError: callers learn the resource exists but is off limits.
var ErrForbidden = errors.New("no tiene permisos para realizar esta accion")

// ErrPlanNoDisponible: create attempted against a plan that is not ACTIVO.
var ErrPlanNoDisponible = errors.New("el plan no esta disponible para reservas")

type NotFoundError struct {
	Resource string
	Field    string
	Value    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s no encontrado con %s: %v", e.Resource, e.Field, e.Value)
}

// InvalidStateError names the attempted action and the offending current
// state, so a caller can tell exactly which transition was rejected.
type InvalidStateError struct {
	Accion    Accion
	Actual    string
	Requerido []string
}

func (e *InvalidStateError) Error() string {
	if len(e.Requerido) == 0 {
		return fmt.Sprintf("no se puede %s en estado %s", e.Accion, e.Actual)
	}
	return fmt.Sprintf("solo se puede %s en estado %s (estado actual: %s)", e.Accion, strings.Join(e.Requerido, ", "), e.Actual)
}

type CapacityError struct {
	PlanID      uint
	Fecha       time.Time
	Disponibles int
	Solicitadas int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("no hay suficiente capacidad disponible para la fecha %s: %d lugares libres, %d solicitados", e.Fecha.Format("2006-01-02"), e.Disponibles, e.Solicitadas)
}
