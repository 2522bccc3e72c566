package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"turismo/src/db"
	"turismo/src/models"
	"turismo/src/policy"
	"turismo/src/types"
)

func cargarPago(id uint) (*models.Pago, error) {
	var pago models.Pago
	err := db.GetDb().
		Preload("Reserva").
		Preload("Reserva.Plan").
		Preload("Reserva.Plan.Municipalidad").
		Where(&models.Pago{ID: id}).
		First(&pago).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Pago", Field: "id", Value: id}
		}
		return nil, err
	}
	return &pago, nil
}

// RegistrarPago records a payment against a live reservation. Anyone who can
// see the reservation can register a payment for it.
func RegistrarPago(actor policy.Actor, body *types.CreatePagoRequestBody) (*models.Pago, error) {
	var reserva models.Reserva
	err := db.GetDb().
		Preload("Plan").
		Preload("Plan.Municipalidad").
		Where(&models.Reserva{ID: body.ReservaID}).
		First(&reserva).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Reserva", Field: "id", Value: body.ReservaID}
		}
		return nil, err
	}
	if !policy.PuedeVerReserva(actor, &reserva) {
		return nil, ErrForbidden
	}
	switch reserva.Estado {
	case types.RESERVA_CANCELADA, types.RESERVA_COMPLETADA, types.RESERVA_NO_SHOW:
		return nil, &InvalidStateError{Accion: AccionPagar, Actual: string(reserva.Estado)}
	}
	// Gateway-less payments (cash, transfers) come without a transaction
	// number; give them one so reconciliation can always key on it.
	numeroTransaccion := body.NumeroTransaccion
	if numeroTransaccion == "" {
		numeroTransaccion = uuid.NewString()
	}
	pago := models.Pago{
		CodigoPago:         NuevoCodigoPago(),
		ReservaID:          reserva.ID,
		Monto:              body.Monto,
		Tipo:               body.Tipo,
		Estado:             types.PAGO_PENDIENTE,
		MetodoPago:         body.MetodoPago,
		NumeroTransaccion:  numeroTransaccion,
		NumeroAutorizacion: body.NumeroAutorizacion,
		Observaciones:      body.Observaciones,
	}
	if err := db.GetDb().Create(&pago).Error; err != nil {
		return nil, err
	}
	log.Printf("Pago %s registrado para la reserva %s\n", pago.CodigoPago, reserva.CodigoReserva)
	return &pago, nil
}

// ConfirmarPago marks a pending payment as confirmed. When the payment
// settles the full amount it also advances the reservation to PAGADA; if the
// reservation is not in CONFIRMADA the payment still settles and the skipped
// transition is logged.
func ConfirmarPago(actor policy.Actor, id uint) (*models.Pago, error) {
	pago, err := cargarPago(id)
	if err != nil {
		return nil, err
	}
	if !policy.PuedeConfirmarReserva(actor, &pago.Reserva.Plan) {
		return nil, ErrForbidden
	}
	if pago.Estado != types.PAGO_PENDIENTE && pago.Estado != types.PAGO_PROCESANDO {
		return nil, &InvalidStateError{
			Accion:    AccionPagar,
			Actual:    string(pago.Estado),
			Requerido: []string{string(types.PAGO_PENDIENTE), string(types.PAGO_PROCESANDO)},
		}
	}
	ahora := time.Now()
	err = db.GetDb().Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Pago{}).
			Where(&models.Pago{ID: id}).
			Updates(map[string]any{"estado": types.PAGO_CONFIRMADO, "fecha_confirmacion": ahora}).Error
		if err != nil {
			return err
		}
		if pago.Tipo != types.TIPO_PAGO_COMPLETO {
			return nil
		}
		hacia, err := SiguienteEstado(AccionPagar, pago.Reserva.Estado)
		if err != nil {
			log.Printf("Pago %s confirmado sin avanzar la reserva %s: %s\n", pago.CodigoPago, pago.Reserva.CodigoReserva, err.Error())
			return nil
		}
		res := tx.Model(&models.Reserva{}).
			Where(&models.Reserva{ID: pago.ReservaID, Estado: pago.Reserva.Estado}).
			Updates(map[string]any{"estado": hacia})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			log.Printf("Pago %s confirmado sin avanzar la reserva %s: estado cambiado concurrentemente\n", pago.CodigoPago, pago.Reserva.CodigoReserva)
			return nil
		}
		pago.Reserva.Estado = hacia
		return nil
	})
	if err != nil {
		return nil, err
	}
	pago.Estado = types.PAGO_CONFIRMADO
	pago.FechaConfirmacion = &ahora
	log.Printf("Pago %s confirmado (reserva %s en %s)\n", pago.CodigoPago, pago.Reserva.CodigoReserva, pago.Reserva.Estado)
	if pago.Reserva.Estado == types.RESERVA_PAGADA {
		go publicarEventoReserva("reservas-pagadas", &pago.Reserva)
	}
	return pago, nil
}

// RechazarPago marks a pending payment as failed. The reservation stays put.
func RechazarPago(actor policy.Actor, id uint) (*models.Pago, error) {
	pago, err := cargarPago(id)
	if err != nil {
		return nil, err
	}
	if !policy.PuedeConfirmarReserva(actor, &pago.Reserva.Plan) {
		return nil, ErrForbidden
	}
	if pago.Estado != types.PAGO_PENDIENTE && pago.Estado != types.PAGO_PROCESANDO {
		return nil, &InvalidStateError{
			Accion:    "rechazar",
			Actual:    string(pago.Estado),
			Requerido: []string{string(types.PAGO_PENDIENTE), string(types.PAGO_PROCESANDO)},
		}
	}
	err = db.GetDb().Model(&models.Pago{}).
		Where(&models.Pago{ID: id}).
		Updates(map[string]any{"estado": types.PAGO_FALLIDO}).Error
	if err != nil {
		return nil, err
	}
	pago.Estado = types.PAGO_FALLIDO
	log.Printf("Pago %s rechazado\n", pago.CodigoPago)
	return pago, nil
}

func GetPagoByID(actor policy.Actor, id uint) (*models.Pago, error) {
	pago, err := cargarPago(id)
	if err != nil {
		return nil, err
	}
	if !policy.PuedeVerReserva(actor, &pago.Reserva) {
		return nil, ErrForbidden
	}
	return pago, nil
}

func GetPagosByReserva(actor policy.Actor, reservaID uint) ([]models.Pago, error) {
	var reserva models.Reserva
	err := db.GetDb().
		Preload("Plan").
		Preload("Plan.Municipalidad").
		Where(&models.Reserva{ID: reservaID}).
		First(&reserva).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Reserva", Field: "id", Value: reservaID}
		}
		return nil, err
	}
	if !policy.PuedeVerReserva(actor, &reserva) {
		return nil, ErrForbidden
	}
	var pagos []models.Pago
	if err := db.GetDb().Where(&models.Pago{ReservaID: reservaID}).Find(&pagos).Error; err != nil {
		return nil, err
	}
	return pagos, nil
}

func GetMisPagos(actor policy.Actor) ([]models.Pago, error) {
	var pagos []models.Pago
	err := db.GetDb().
		Joins("JOIN reservas ON reservas.id = pagos.reserva_id").
		Where("reservas.usuario_id = ?", actor.ID).
		Order("fecha_pago DESC").
		Find(&pagos).Error
	if err != nil {
		return nil, err
	}
	return pagos, nil
}
