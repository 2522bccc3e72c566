package boot

import (
	"log"
	"turismo/src/db"
	"turismo/src/lib"
	"turismo/src/models"
	"turismo/src/services"
	"turismo/src/types"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.Rol{},
		&models.Usuario{},
		&models.Municipalidad{},
		&models.Categoria{},
		&models.Emprendedor{},
		&models.ServicioTuristico{},
		&models.PlanTuristico{},
		&models.ServicioPlan{},
		&models.Reserva{},
		&models.ReservaServicio{},
		&models.Pago{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	seedRoles(db)

	return db
}

// seedRoles makes sure the closed role set exists before anyone registers.
func seedRoles(db *gorm.DB) {
	roles := []types.Rol{types.ROL_ADMIN, types.ROL_USER, types.ROL_EMPRENDEDOR, types.ROL_MUNICIPALIDAD}
	for _, r := range roles {
		rol := models.Rol{Nombre: r}
		if err := db.FirstOrCreate(&rol, rol).Error; err != nil {
			log.Printf("Error seeding rol %s: %s\n", r, err.Error())
		}
	}
}

// InitBroker makes sure the reservation lifecycle topics exist. Topic
// creation is fire-and-forget: consumers tolerate a broker that is not up yet.
func InitBroker() {
	go lib.KafkaCreateTopics(
		"reservas-creadas",
		"reservas-confirmadas",
		"reservas-pagadas",
		"reservas-canceladas",
		"reservas-completadas",
	)
}

// InitScheduler registers the daily lifecycle jobs: reservations whose start
// date arrived move to EN_PROCESO, stale pending ones become NO_SHOW.
func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	if _, err := lib.CreateDailyJob("iniciar-reservas", 6, 0, func() {
		if _, err := services.IniciarReservasDelDia(); err != nil {
			log.Printf("Error starting due reservations: %s\n", err.Error())
		}
	}); err != nil {
		log.Printf("Error scheduling job: %s\n", err.Error())
	}
	if _, err := lib.CreateDailyJob("marcar-no-shows", 6, 30, func() {
		if _, err := services.MarcarNoShows(); err != nil {
			log.Printf("Error flagging no-shows: %s\n", err.Error())
		}
	}); err != nil {
		log.Printf("Error scheduling job: %s\n", err.Error())
	}
	jobsWaitingInQueue := len(sched.Jobs())
	log.Println("Jobs in queue:", jobsWaitingInQueue)
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	if err := sched.Shutdown(); err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
	}
}
