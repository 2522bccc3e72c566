package services

import (
	"turismo/src/config"
	"turismo/src/models"
	"turismo/src/types"
)

// proyectarReserva flattens a reservation plus the reduced plan, municipality
// and user views into the single response shape the API returns everywhere.
func proyectarReserva(r *models.Reserva) *types.ReservaResponse {
	return &types.ReservaResponse{
		ID:                    r.ID,
		CodigoReserva:         r.CodigoReserva,
		FechaInicio:           r.FechaInicio.Format(config.DATE_FORMAT),
		FechaFin:              r.FechaFin.Format(config.DATE_FORMAT),
		NumeroPersonas:        r.NumeroPersonas,
		MontoTotal:            r.MontoTotal,
		MontoDescuento:        r.MontoDescuento,
		MontoFinal:            r.MontoFinal,
		Estado:                r.Estado,
		MetodoPago:            r.MetodoPago,
		Observaciones:         r.Observaciones,
		SolicitudesEspeciales: r.SolicitudesEspeciales,
		ContactoEmergencia:    r.ContactoEmergencia,
		TelefonoEmergencia:    r.TelefonoEmergencia,
		FechaReserva:          r.FechaReserva,
		FechaConfirmacion:     r.FechaConfirmacion,
		FechaCancelacion:      r.FechaCancelacion,
		MotivoCancelacion:     r.MotivoCancelacion,
		Plan: types.PlanTuristicoBasicResponse{
			ID:                 r.Plan.ID,
			Nombre:             r.Plan.Nombre,
			Descripcion:        r.Plan.Descripcion,
			PrecioTotal:        r.Plan.PrecioTotal,
			DuracionDias:       r.Plan.DuracionDias,
			CapacidadMaxima:    r.Plan.CapacidadMaxima,
			Estado:             r.Plan.Estado,
			NivelDificultad:    r.Plan.NivelDificultad,
			ImagenPrincipalURL: r.Plan.ImagenPrincipalURL,
			Municipalidad: types.MunicipalidadBasicResponse{
				ID:           r.Plan.Municipalidad.ID,
				Nombre:       r.Plan.Municipalidad.Nombre,
				Departamento: r.Plan.Municipalidad.Departamento,
				Provincia:    r.Plan.Municipalidad.Provincia,
				Distrito:     r.Plan.Municipalidad.Distrito,
			},
		},
		Usuario: types.UsuarioBasicResponse{
			ID:       r.Usuario.ID,
			Nombre:   r.Usuario.Nombre,
			Apellido: r.Usuario.Apellido,
			Username: r.Usuario.Username,
			Email:    r.Usuario.Email,
		},
	}
}

func proyectarReservas(rs []models.Reserva) []types.ReservaResponse {
	out := make([]types.ReservaResponse, 0, len(rs))
	for i := range rs {
		out = append(out, *proyectarReserva(&rs[i]))
	}
	return out
}
