package services

import (
	"log"
	"time"

	"turismo/src/db"
	"turismo/src/models"
	"turismo/src/types"
)

// hoy truncates now to the stored date granularity.
func hoy() time.Time {
	ahora := time.Now().UTC()
	return time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, time.UTC)
}

// IniciarReservasDelDia moves every CONFIRMADA or PAGADA reservation whose
// start date has arrived into EN_PROCESO. The WHERE clause restricts the
// update to the two states the transition table allows for iniciar.
func IniciarReservasDelDia() (int64, error) {
	res := db.GetDb().Model(&models.Reserva{}).
		Where("estado IN ?", []types.EstadoReserva{types.RESERVA_CONFIRMADA, types.RESERVA_PAGADA}).
		Where("fecha_inicio <= ?", hoy()).
		Updates(map[string]any{"estado": types.RESERVA_EN_PROCESO})
	if res.Error != nil {
		log.Printf("Failed to start due reservations: %s\n", res.Error.Error())
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("%d reservas iniciadas\n", res.RowsAffected)
	}
	return res.RowsAffected, nil
}

// MarcarNoShows flags reservations that were never confirmed and whose start
// date has passed. Confirmed and paid reservations are started by
// IniciarReservasDelDia instead.
func MarcarNoShows() (int64, error) {
	res := db.GetDb().Model(&models.Reserva{}).
		Where("estado = ?", types.RESERVA_PENDIENTE).
		Where("fecha_inicio < ?", hoy()).
		Updates(map[string]any{"estado": types.RESERVA_NO_SHOW})
	if res.Error != nil {
		log.Printf("Failed to flag no-shows: %s\n", res.Error.Error())
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("%d reservas marcadas como no-show\n", res.RowsAffected)
	}
	return res.RowsAffected, nil
}
