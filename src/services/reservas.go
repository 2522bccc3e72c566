package services

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"turismo/src/config"
	"turismo/src/db"
	"turismo/src/models"
	"turismo/src/policy"
	"turismo/src/types"
)

// conProyeccion loads the associations the reservation projection flattens.
func conProyeccion(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Plan").Preload("Plan.Municipalidad").Preload("Usuario")
}

// CalcularFechaFin: a plan of N days starting on D ends on D + N - 1. A
// one-day plan starts and ends on the same date.
func CalcularFechaFin(plan *models.PlanTuristico, fechaInicio time.Time) time.Time {
	dias := plan.DuracionDias
	if dias < 1 {
		dias = 1
	}
	return fechaInicio.AddDate(0, 0, dias-1)
}

// CalcularMontoTotal prices the party against the plan's published total.
func CalcularMontoTotal(plan *models.PlanTuristico, numeroPersonas int) float64 {
	return plan.PrecioTotal * float64(numeroPersonas)
}

// verificarDisponibilidad sums the headcount of every non-cancelled
// reservation for the plan and start date. Cancelled reservations release
// their seats; NO_SHOW and COMPLETADA keep holding theirs.
func verificarDisponibilidad(tx *gorm.DB, plan *models.PlanTuristico, fechaInicio time.Time, numeroPersonas int) error {
	var personas sql.NullInt64
	err := tx.
		Model(&models.Reserva{}).
		Select("SUM(numero_personas)").
		Where("plan_id = ? AND fecha_inicio = ?", plan.ID, fechaInicio).
		Where("estado <> ?", types.RESERVA_CANCELADA).
		Scan(&personas).Error
	if err != nil {
		return err
	}
	reservadas := int(personas.Int64) // SUM over zero rows is NULL, which scans as 0
	if reservadas+numeroPersonas > plan.CapacidadMaxima {
		return &CapacityError{
			PlanID:      plan.ID,
			Fecha:       fechaInicio,
			Disponibles: plan.CapacidadMaxima - reservadas,
			Solicitadas: numeroPersonas,
		}
	}
	return nil
}

// CrearReserva books a plan for the acting user. The availability check and
// the insert run inside one transaction holding a row lock on the plan, so
// two concurrent bookings for the last seats cannot both pass the check.
func CrearReserva(actor policy.Actor, body *types.CreateReservaRequestBody) (*types.ReservaResponse, error) {
	fechaInicio, err := time.Parse(config.DATE_FORMAT, body.FechaInicio)
	if err != nil {
		return nil, err
	}
	tx := db.GetDb()
	var reserva models.Reserva
	err = tx.Transaction(func(tx *gorm.DB) error {
		var plan models.PlanTuristico
		q := tx.Where(&models.PlanTuristico{ID: body.PlanID})
		// sqlite has no row locks; its single-writer model covers the same race
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&plan).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Plan", Field: "id", Value: body.PlanID}
			}
			return err
		}
		if plan.Estado != types.PLAN_ACTIVO {
			return ErrPlanNoDisponible
		}
		if err := verificarDisponibilidad(tx, &plan, fechaInicio, body.NumeroPersonas); err != nil {
			return err
		}
		montoTotal := CalcularMontoTotal(&plan, body.NumeroPersonas)
		reserva = models.Reserva{
			CodigoReserva:         NuevoCodigoReserva(),
			PlanID:                plan.ID,
			UsuarioID:             actor.ID,
			FechaInicio:           fechaInicio,
			FechaFin:              CalcularFechaFin(&plan, fechaInicio),
			NumeroPersonas:        body.NumeroPersonas,
			MontoTotal:            montoTotal,
			MontoDescuento:        0,
			MontoFinal:            montoTotal,
			Estado:                types.RESERVA_PENDIENTE,
			MetodoPago:            body.MetodoPago,
			Observaciones:         body.Observaciones,
			SolicitudesEspeciales: body.SolicitudesEspeciales,
			ContactoEmergencia:    body.ContactoEmergencia,
			TelefonoEmergencia:    body.TelefonoEmergencia,
		}
		if err := tx.Create(&reserva).Error; err != nil {
			return err
		}
		for _, sp := range body.ServiciosPersonalizados {
			var servicioPlan models.ServicioPlan
			if err := tx.
				Where(&models.ServicioPlan{ID: sp.ServicioPlanID, PlanID: plan.ID}).
				First(&servicioPlan).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NotFoundError{Resource: "ServicioPlan", Field: "id", Value: sp.ServicioPlanID}
				}
				return err
			}
			estado := sp.Estado
			if estado == "" {
				estado = types.SERVICIO_RESERVA_INCLUIDO
			}
			linea := models.ReservaServicio{
				ReservaID:           reserva.ID,
				ServicioPlanID:      servicioPlan.ID,
				Incluido:            sp.Incluido,
				PrecioPersonalizado: sp.PrecioPersonalizado,
				Observaciones:       sp.Observaciones,
				Estado:              estado,
			}
			if err := tx.Create(&linea).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Reserva %s creada para el plan %d por el usuario %d\n", reserva.CodigoReserva, reserva.PlanID, actor.ID)
	go publicarEventoReserva("reservas-creadas", &reserva)
	return cargarProyeccion(reserva.ID)
}

// actualizarEstado applies a transition only while the row still holds the
// state the decision was made against. A concurrent transition leaves the
// update matching nothing, which surfaces as a state conflict instead of a
// silent double transition.
func actualizarEstado(id uint, desde types.EstadoReserva, accion Accion, campos map[string]any) error {
	res := db.GetDb().Model(&models.Reserva{}).
		Where(&models.Reserva{ID: id, Estado: desde}).
		Updates(campos)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var actual models.Reserva
		db.GetDb().Select("estado").Where(&models.Reserva{ID: id}).First(&actual)
		return &InvalidStateError{
			Accion:    accion,
			Actual:    string(actual.Estado),
			Requerido: []string{string(desde)},
		}
	}
	return nil
}

// cargarReserva fetches a reservation with its projection associations.
func cargarReserva(id uint) (*models.Reserva, error) {
	var reserva models.Reserva
	if err := conProyeccion(db.GetDb()).Where(&models.Reserva{ID: id}).First(&reserva).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Reserva", Field: "id", Value: id}
		}
		return nil, err
	}
	return &reserva, nil
}

func cargarProyeccion(id uint) (*types.ReservaResponse, error) {
	reserva, err := cargarReserva(id)
	if err != nil {
		return nil, err
	}
	return proyectarReserva(reserva), nil
}

func GetReservaByID(actor policy.Actor, id uint) (*types.ReservaResponse, error) {
	reserva, err := cargarReserva(id)
	if err != nil {
		return nil, err
	}
	if !policy.PuedeVerReserva(actor, reserva) {
		return nil, ErrForbidden
	}
	return proyectarReserva(reserva), nil
}

// resolverCodigoCacheado follows a cached codigo→id mapping. When the mapping
// turns out stale the caller looked up a codigo, not an id, so the not-found
// reports what they actually supplied.
func resolverCodigoCacheado(actor policy.Actor, codigo string, id uint) (*types.ReservaResponse, error) {
	res, err := GetReservaByID(actor, id)
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return nil, &NotFoundError{Resource: "Reserva", Field: "codigo", Value: codigo}
	}
	return res, err
}

// GetReservaByCodigo resolves a business code to a reservation. The code to
// id mapping never changes once issued, so it is cached without invalidation.
func GetReservaByCodigo(actor policy.Actor, codigo string) (*types.ReservaResponse, error) {
	if id, ok := codigoCacheGet(codigo); ok {
		return resolverCodigoCacheado(actor, codigo, id)
	}
	var reserva models.Reserva
	if err := conProyeccion(db.GetDb()).Where(&models.Reserva{CodigoReserva: codigo}).First(&reserva).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Reserva", Field: "codigo", Value: codigo}
		}
		return nil, err
	}
	codigoCacheSet(codigo, reserva.ID)
	if !policy.PuedeVerReserva(actor, &reserva) {
		return nil, ErrForbidden
	}
	return proyectarReserva(&reserva), nil
}

// GetAllReservas is the admin-only global listing. Non-admins are denied,
// never handed an empty slice.
func GetAllReservas(actor policy.Actor) ([]types.ReservaResponse, error) {
	if !policy.PuedeListarTodas(actor) {
		return nil, ErrForbidden
	}
	var reservas []models.Reserva
	if err := conProyeccion(db.GetDb()).Find(&reservas).Error; err != nil {
		return nil, err
	}
	return proyectarReservas(reservas), nil
}

func GetMisReservas(actor policy.Actor) ([]types.ReservaResponse, error) {
	var reservas []models.Reserva
	err := conProyeccion(db.GetDb()).
		Where(&models.Reserva{UsuarioID: actor.ID}).
		Order("fecha_reserva DESC").
		Find(&reservas).Error
	if err != nil {
		return nil, err
	}
	return proyectarReservas(reservas), nil
}

func GetReservasByPlan(actor policy.Actor, planID uint) ([]types.ReservaResponse, error) {
	var plan models.PlanTuristico
	if err := db.GetDb().Preload("Municipalidad").Where(&models.PlanTuristico{ID: planID}).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Plan", Field: "id", Value: planID}
		}
		return nil, err
	}
	if !policy.PuedeVerReservasDelPlan(actor, &plan) {
		return nil, ErrForbidden
	}
	var reservas []models.Reserva
	if err := conProyeccion(db.GetDb()).Where(&models.Reserva{PlanID: planID}).Find(&reservas).Error; err != nil {
		return nil, err
	}
	return proyectarReservas(reservas), nil
}

func GetReservasByMunicipalidad(actor policy.Actor, municipalidadID uint) ([]types.ReservaResponse, error) {
	var municipalidad models.Municipalidad
	if err := db.GetDb().Where(&models.Municipalidad{ID: municipalidadID}).First(&municipalidad).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Municipalidad", Field: "id", Value: municipalidadID}
		}
		return nil, err
	}
	if !policy.PuedeVerReservasDeMunicipalidad(actor, &municipalidad) {
		return nil, ErrForbidden
	}
	var reservas []models.Reserva
	err := conProyeccion(db.GetDb()).
		Joins("JOIN plan_turisticos ON plan_turisticos.id = reservas.plan_id").
		Where("plan_turisticos.municipalidad_id = ?", municipalidadID).
		Find(&reservas).Error
	if err != nil {
		return nil, err
	}
	return proyectarReservas(reservas), nil
}

// ConfirmarReserva moves PENDIENTE to CONFIRMADA and stamps the moment.
// Only the plan owner or an admin may confirm.
func ConfirmarReserva(actor policy.Actor, id uint) (*types.ReservaResponse, error) {
	reserva, err := cargarReserva(id)
	if err != nil {
		return nil, err
	}
	if !policy.PuedeConfirmarReserva(actor, &reserva.Plan) {
		return nil, ErrForbidden
	}
	hacia, err := SiguienteEstado(AccionConfirmar, reserva.Estado)
	if err != nil {
		return nil, err
	}
	ahora := time.Now()
	err = actualizarEstado(id, reserva.Estado, AccionConfirmar, map[string]any{"estado": hacia, "fecha_confirmacion": ahora})
	if err != nil {
		return nil, err
	}
	reserva.Estado = hacia
	reserva.FechaConfirmacion = &ahora
	log.Printf("Reserva %s confirmada por el usuario %d\n", reserva.CodigoReserva, actor.ID)
	go publicarEventoReserva("reservas-confirmadas", reserva)
	go notificarConfirmacion(reserva)
	return proyectarReserva(reserva), nil
}

// CancelarReserva is legal from every state except CANCELADA and COMPLETADA.
// The motive is stored verbatim; a second cancel is rejected, not ignored.
func CancelarReserva(actor policy.Actor, id uint, motivo string) (*types.ReservaResponse, error) {
	reserva, err := cargarReserva(id)
	if err != nil {
		return nil, err
	}
	if !policy.PuedeCancelarReserva(actor, reserva) {
		return nil, ErrForbidden
	}
	hacia, err := SiguienteEstado(AccionCancelar, reserva.Estado)
	if err != nil {
		return nil, err
	}
	ahora := time.Now()
	err = actualizarEstado(id, reserva.Estado, AccionCancelar, map[string]any{"estado": hacia, "fecha_cancelacion": ahora, "motivo_cancelacion": motivo})
	if err != nil {
		return nil, err
	}
	reserva.Estado = hacia
	reserva.FechaCancelacion = &ahora
	reserva.MotivoCancelacion = motivo
	log.Printf("Reserva %s cancelada por el usuario %d: %s\n", reserva.CodigoReserva, actor.ID, motivo)
	go publicarEventoReserva("reservas-canceladas", reserva)
	return proyectarReserva(reserva), nil
}

// CompletarReserva closes out an EN_PROCESO reservation. The legacy flow
// never recorded a completion timestamp and downstream reporting depends on
// that shape, so none is stamped here either.
func CompletarReserva(actor policy.Actor, id uint) (*types.ReservaResponse, error) {
	reserva, err := cargarReserva(id)
	if err != nil {
		return nil, err
	}
	if !policy.PuedeCompletarReserva(actor, &reserva.Plan) {
		return nil, ErrForbidden
	}
	hacia, err := SiguienteEstado(AccionCompletar, reserva.Estado)
	if err != nil {
		return nil, err
	}
	err = actualizarEstado(id, reserva.Estado, AccionCompletar, map[string]any{"estado": hacia})
	if err != nil {
		return nil, err
	}
	reserva.Estado = hacia
	log.Printf("Reserva %s completada por el usuario %d\n", reserva.CodigoReserva, actor.ID)
	go publicarEventoReserva("reservas-completadas", reserva)
	return proyectarReserva(reserva), nil
}
