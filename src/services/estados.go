package services

import (
	"turismo/src/types"
)

// Accion is a reservation lifecycle operation. Confirmar, cancelar and
// completar arrive through the HTTP surface; pagar, iniciar and no_show are
// driven by the payment collaborator and the scheduled check-in jobs.
type Accion string

const (
	AccionConfirmar Accion = "confirmar"
	AccionPagar     Accion = "pagar"
	AccionIniciar   Accion = "iniciar"
	AccionCompletar Accion = "completar"
	AccionCancelar  Accion = "cancelar"
	AccionNoShow    Accion = "marcar no-show"
)

type transicion struct {
	desde []types.EstadoReserva
	hacia types.EstadoReserva
}

// The allowed-transition table. Cancelar is handled apart: it is legal from
// every state except the terminal CANCELADA and COMPLETADA.
var transiciones = map[Accion]transicion{
	AccionConfirmar: {desde: []types.EstadoReserva{types.RESERVA_PENDIENTE}, hacia: types.RESERVA_CONFIRMADA},
	AccionPagar:     {desde: []types.EstadoReserva{types.RESERVA_CONFIRMADA}, hacia: types.RESERVA_PAGADA},
	AccionIniciar:   {desde: []types.EstadoReserva{types.RESERVA_CONFIRMADA, types.RESERVA_PAGADA}, hacia: types.RESERVA_EN_PROCESO},
	AccionCompletar: {desde: []types.EstadoReserva{types.RESERVA_EN_PROCESO}, hacia: types.RESERVA_COMPLETADA},
	AccionNoShow:    {desde: []types.EstadoReserva{types.RESERVA_PENDIENTE}, hacia: types.RESERVA_NO_SHOW},
}

// SiguienteEstado resolves a transition against the table, or returns an
// InvalidStateError naming the action and the current state.
func SiguienteEstado(accion Accion, actual types.EstadoReserva) (types.EstadoReserva, error) {
	if accion == AccionCancelar {
		if actual == types.RESERVA_CANCELADA || actual == types.RESERVA_COMPLETADA {
			return "", &InvalidStateError{Accion: accion, Actual: string(actual)}
		}
		return types.RESERVA_CANCELADA, nil
	}
	t, ok := transiciones[accion]
	if !ok {
		return "", &InvalidStateError{Accion: accion, Actual: string(actual)}
	}
	requerido := make([]string, 0, len(t.desde))
	for _, desde := range t.desde {
		if desde == actual {
			return t.hacia, nil
		}
		requerido = append(requerido, string(desde))
	}
	return "", &InvalidStateError{Accion: accion, Actual: string(actual), Requerido: requerido}
}
