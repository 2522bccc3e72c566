package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"turismo/src/lib"
	"turismo/src/models"
)

// publicarEventoReserva pushes a lifecycle event to the broker. Delivery is
// best effort: a broker outage must never fail the request that triggered it.
func publicarEventoReserva(topic string, r *models.Reserva) {
	err := lib.KafkaProduceMessage("reservas_producer", topic, map[string]any{
		"id":              r.ID,
		"codigo_reserva":  r.CodigoReserva,
		"plan_id":         r.PlanID,
		"usuario_id":      r.UsuarioID,
		"estado":          r.Estado,
		"numero_personas": r.NumeroPersonas,
		"monto_final":     r.MontoFinal,
	})
	if err != nil {
		log.Printf("Failed to publish to %s for %s: %s\n", topic, r.CodigoReserva, err.Error())
	}
}

// notificarConfirmacion mails the reservation holder. Requires the Usuario
// and Plan associations to be loaded.
func notificarConfirmacion(r *models.Reserva) {
	if r.Usuario.Email == "" {
		return
	}
	body := fmt.Sprintf(
		"Hola %s,\n\nTu reserva %s para el plan %q ha sido confirmada.\nFecha de inicio: %s\nPersonas: %d\nMonto: %.2f\n\nGracias por reservar con nosotros.",
		r.Usuario.Nombre, r.CodigoReserva, r.Plan.Nombre, r.FechaInicio.Format("2006-01-02"), r.NumeroPersonas, r.MontoFinal,
	)
	err := lib.SendMail(&lib.SendMailInput{
		From:     os.Getenv("SMTP_FROM"),
		FromName: "Turismo",
		To:       []string{r.Usuario.Email},
		Subject:  fmt.Sprintf("Reserva %s confirmada", r.CodigoReserva),
		Body:     body,
	})
	if err != nil {
		log.Printf("Failed to send confirmation email for %s: %s\n", r.CodigoReserva, err.Error())
	}
}

const codigoCacheTTL = 24 * time.Hour

func codigoCacheKey(codigo string) string {
	return fmt.Sprintf("reservas:codigo:%s", codigo)
}

func codigoCacheGet(codigo string) (uint, bool) {
	rdb := lib.GetRedisClient()
	if rdb == nil {
		return 0, false
	}
	val, err := rdb.Get(context.Background(), codigoCacheKey(codigo)).Result()
	if err == redis.Nil {
		return 0, false
	} else if err != nil {
		log.Printf("Error retrieving cached id for %s: %s\n", codigo, err.Error())
		return 0, false
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func codigoCacheSet(codigo string, id uint) {
	rdb := lib.GetRedisClient()
	if rdb == nil {
		return
	}
	if err := rdb.SetEx(context.Background(), codigoCacheKey(codigo), strconv.FormatUint(uint64(id), 10), codigoCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache id for %s: %s\n", codigo, err.Error())
	}
}
