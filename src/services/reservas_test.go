package services

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"turismo/src/config"
	"turismo/src/db"
	"turismo/src/models"
	"turismo/src/policy"
	"turismo/src/types"
)

var testDBCount int

type ReservasTestSuite struct {
	suite.Suite
	admin   policy.Actor
	dueno   policy.Actor
	turista policy.Actor
	plan    models.PlanTuristico
}

func (s *ReservasTestSuite) SetupTest() {
	testDBCount++
	dsn := fmt.Sprintf("file:reservas%d?mode=memory&cache=shared", testDBCount)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.Require().NoError(gdb.AutoMigrate(
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
	))
	db.NewDB(gdb)

	s.admin = s.crearUsuario("admin", types.ROL_ADMIN)
	s.dueno = s.crearUsuario("dueno", types.ROL_MUNICIPALIDAD)
	s.turista = s.crearUsuario("turista", types.ROL_USER)

	municipalidad := models.Municipalidad{Nombre: "Capachica", Departamento: "Puno", Provincia: "Puno", Distrito: "Capachica"}
	s.Require().NoError(gdb.Create(&municipalidad).Error)

	s.plan = models.PlanTuristico{
		Nombre:           "Ruta del Titicaca",
		Slug:             "ruta-del-titicaca",
		PrecioTotal:      150,
		DuracionDias:     3,
		CapacidadMaxima:  10,
		Estado:           types.PLAN_ACTIVO,
		MunicipalidadID:  municipalidad.ID,
		UsuarioCreadorID: s.dueno.ID,
	}
	s.Require().NoError(gdb.Create(&s.plan).Error)
}

func (s *ReservasTestSuite) crearUsuario(username string, roles ...types.Rol) policy.Actor {
	usuario := models.Usuario{
		Nombre:   username,
		Apellido: "test",
		Username: username,
		Email:    username + "@test.local",
	}
	s.Require().NoError(db.GetDb().Create(&usuario).Error)
	return policy.Actor{ID: usuario.ID, Roles: roles}
}

func (s *ReservasTestSuite) fechaFutura() string {
	return time.Now().AddDate(0, 1, 0).Format(config.DATE_FORMAT)
}

func (s *ReservasTestSuite) crearReserva(actor policy.Actor, personas int) *types.ReservaResponse {
	res, err := CrearReserva(actor, &types.CreateReservaRequestBody{
		PlanID:         s.plan.ID,
		FechaInicio:    s.fechaFutura(),
		NumeroPersonas: personas,
	})
	s.Require().NoError(err)
	return res
}

func (s *ReservasTestSuite) TestCrearReserva() {
	res, err := CrearReserva(s.turista, &types.CreateReservaRequestBody{
		PlanID:         s.plan.ID,
		FechaInicio:    "2026-09-10",
		NumeroPersonas: 2,
		Observaciones:  "sin gluten",
	})
	s.Require().NoError(err)
	s.Equal(types.RESERVA_PENDIENTE, res.Estado)
	s.Equal("2026-09-10", res.FechaInicio)
	s.Equal("2026-09-12", res.FechaFin, "a 3-day plan ends two days after it starts")
	s.Equal(float64(300), res.MontoTotal)
	s.Equal(float64(0), res.MontoDescuento)
	s.Equal(float64(300), res.MontoFinal)
	s.Regexp(regexp.MustCompile(`^RES-\d+$`), res.CodigoReserva)
	s.Equal(s.turista.ID, res.Usuario.ID)
	s.Equal(s.plan.ID, res.Plan.ID)
	s.Equal("Capachica", res.Plan.Municipalidad.Nombre)
}

func (s *ReservasTestSuite) TestCrearReservaPlanDeUnDia() {
	s.Require().NoError(db.GetDb().Model(&models.PlanTuristico{}).Where("id = ?", s.plan.ID).Update("duracion_dias", 1).Error)
	res, err := CrearReserva(s.turista, &types.CreateReservaRequestBody{
		PlanID:         s.plan.ID,
		FechaInicio:    "2026-09-10",
		NumeroPersonas: 1,
	})
	s.Require().NoError(err)
	s.Equal("2026-09-10", res.FechaFin, "a one-day plan starts and ends the same date")
}

func (s *ReservasTestSuite) TestCrearReservaPlanInactivo() {
	s.Require().NoError(db.GetDb().Model(&models.PlanTuristico{}).Where("id = ?", s.plan.ID).Update("estado", types.PLAN_INACTIVO).Error)
	_, err := CrearReserva(s.turista, &types.CreateReservaRequestBody{
		PlanID:         s.plan.ID,
		FechaInicio:    s.fechaFutura(),
		NumeroPersonas: 1,
	})
	s.ErrorIs(err, ErrPlanNoDisponible)
}

func (s *ReservasTestSuite) TestCrearReservaPlanInexistente() {
	_, err := CrearReserva(s.turista, &types.CreateReservaRequestBody{
		PlanID:         9999,
		FechaInicio:    s.fechaFutura(),
		NumeroPersonas: 1,
	})
	var notFound *NotFoundError
	s.ErrorAs(err, &notFound)
	s.Equal("Plan", notFound.Resource)
}

func (s *ReservasTestSuite) TestCapacidadLlena() {
	s.crearReserva(s.turista, 8)

	_, err := CrearReserva(s.turista, &types.CreateReservaRequestBody{
		PlanID:         s.plan.ID,
		FechaInicio:    s.fechaFutura(),
		NumeroPersonas: 3,
	})
	var capErr *CapacityError
	s.Require().ErrorAs(err, &capErr, "8 + 3 over a capacity of 10 must be rejected")
	s.Equal(2, capErr.Disponibles)
	s.Equal(3, capErr.Solicitadas)

	res, err := CrearReserva(s.turista, &types.CreateReservaRequestBody{
		PlanID:         s.plan.ID,
		FechaInicio:    s.fechaFutura(),
		NumeroPersonas: 2,
	})
	s.Require().NoError(err, "8 + 2 exactly fills the capacity of 10")
	s.Equal(types.RESERVA_PENDIENTE, res.Estado)
}

func (s *ReservasTestSuite) TestCapacidadIgnoraCanceladas() {
	primera := s.crearReserva(s.turista, 8)
	_, err := CancelarReserva(s.turista, primera.ID, "cambio de planes")
	s.Require().NoError(err)

	_, err = CrearReserva(s.turista, &types.CreateReservaRequestBody{
		PlanID:         s.plan.ID,
		FechaInicio:    s.fechaFutura(),
		NumeroPersonas: 5,
	})
	s.NoError(err, "cancelled reservations release their seats")
}

func (s *ReservasTestSuite) TestCapacidadOtraFecha() {
	s.crearReserva(s.turista, 10)
	_, err := CrearReserva(s.turista, &types.CreateReservaRequestBody{
		PlanID:         s.plan.ID,
		FechaInicio:    time.Now().AddDate(0, 2, 0).Format(config.DATE_FORMAT),
		NumeroPersonas: 10,
	})
	s.NoError(err, "capacity is tracked per start date")
}

func (s *ReservasTestSuite) TestConfirmar() {
	res := s.crearReserva(s.turista, 2)

	confirmada, err := ConfirmarReserva(s.dueno, res.ID)
	s.Require().NoError(err)
	s.Equal(types.RESERVA_CONFIRMADA, confirmada.Estado)
	s.Require().NotNil(confirmada.FechaConfirmacion)

	_, err = ConfirmarReserva(s.dueno, res.ID)
	var estadoErr *InvalidStateError
	s.ErrorAs(err, &estadoErr, "confirming twice must be rejected")
}

func (s *ReservasTestSuite) TestConfirmarSoloPropietario() {
	res := s.crearReserva(s.turista, 2)
	_, err := ConfirmarReserva(s.turista, res.ID)
	s.ErrorIs(err, ErrForbidden, "the reservation holder cannot confirm their own reservation")

	_, err = ConfirmarReserva(s.admin, res.ID)
	s.NoError(err)
}

func (s *ReservasTestSuite) TestCancelar() {
	res := s.crearReserva(s.turista, 2)

	cancelada, err := CancelarReserva(s.turista, res.ID, "  llueve demasiado  ")
	s.Require().NoError(err)
	s.Equal(types.RESERVA_CANCELADA, cancelada.Estado)
	s.Require().NotNil(cancelada.FechaCancelacion)
	s.Equal("  llueve demasiado  ", cancelada.MotivoCancelacion, "the motive is stored verbatim")

	_, err = CancelarReserva(s.turista, res.ID, "otra vez")
	var estadoErr *InvalidStateError
	s.Require().ErrorAs(err, &estadoErr, "a second cancel is rejected, not ignored")

	var guardada models.Reserva
	s.Require().NoError(db.GetDb().First(&guardada, res.ID).Error)
	s.Equal("  llueve demasiado  ", guardada.MotivoCancelacion, "the original motive survives the rejected retry")
}

func (s *ReservasTestSuite) TestCancelarDesdeCompletada() {
	res := s.crearReserva(s.turista, 2)
	s.Require().NoError(db.GetDb().Model(&models.Reserva{}).Where("id = ?", res.ID).Update("estado", types.RESERVA_COMPLETADA).Error)
	_, err := CancelarReserva(s.admin, res.ID, "tarde")
	var estadoErr *InvalidStateError
	s.ErrorAs(err, &estadoErr)
}

func (s *ReservasTestSuite) TestCompletar() {
	res := s.crearReserva(s.turista, 2)

	_, err := CompletarReserva(s.dueno, res.ID)
	var estadoErr *InvalidStateError
	s.Require().ErrorAs(err, &estadoErr, "only EN_PROCESO reservations can be completed")

	s.Require().NoError(db.GetDb().Model(&models.Reserva{}).Where("id = ?", res.ID).Update("estado", types.RESERVA_EN_PROCESO).Error)
	completada, err := CompletarReserva(s.dueno, res.ID)
	s.Require().NoError(err)
	s.Equal(types.RESERVA_COMPLETADA, completada.Estado)
	s.Nil(completada.FechaConfirmacion, "completion never stamped a confirmation")
}

func (s *ReservasTestSuite) TestTransicionPerdidaConflictua() {
	res := s.crearReserva(s.turista, 2)

	// another writer moves the reservation after this flow read PENDIENTE
	s.Require().NoError(db.GetDb().Model(&models.Reserva{}).Where("id = ?", res.ID).Update("estado", types.RESERVA_CANCELADA).Error)

	err := actualizarEstado(res.ID, types.RESERVA_PENDIENTE, AccionConfirmar, map[string]any{"estado": types.RESERVA_CONFIRMADA})
	var estadoErr *InvalidStateError
	s.Require().ErrorAs(err, &estadoErr, "a stale transition must conflict, not apply")
	s.Equal(string(types.RESERVA_CANCELADA), estadoErr.Actual)

	var guardada models.Reserva
	s.Require().NoError(db.GetDb().Where(&models.Reserva{ID: res.ID}).First(&guardada).Error)
	s.Equal(types.RESERVA_CANCELADA, guardada.Estado, "the earlier cancel stands")
}

func (s *ReservasTestSuite) TestGetAllReservasSoloAdmin() {
	s.crearReserva(s.turista, 2)

	_, err := GetAllReservas(s.turista)
	s.ErrorIs(err, ErrForbidden, "non-admins get a denial, not an empty list")
	_, err = GetAllReservas(s.dueno)
	s.ErrorIs(err, ErrForbidden)

	todas, err := GetAllReservas(s.admin)
	s.Require().NoError(err)
	s.Len(todas, 1)
}

func (s *ReservasTestSuite) TestGetReservaByID() {
	res := s.crearReserva(s.turista, 2)

	otro := s.crearUsuario("otro", types.ROL_USER)
	_, err := GetReservaByID(otro, res.ID)
	s.ErrorIs(err, ErrForbidden)

	_, err = GetReservaByID(s.turista, res.ID)
	s.NoError(err, "the holder sees their own reservation")
	_, err = GetReservaByID(s.dueno, res.ID)
	s.NoError(err, "the plan owner sees reservations against their plan")
	_, err = GetReservaByID(s.admin, res.ID)
	s.NoError(err)

	_, err = GetReservaByID(s.admin, 9999)
	var notFound *NotFoundError
	s.ErrorAs(err, &notFound)
}

func (s *ReservasTestSuite) TestGetReservaByCodigo() {
	res := s.crearReserva(s.turista, 2)

	encontrada, err := GetReservaByCodigo(s.turista, res.CodigoReserva)
	s.Require().NoError(err)
	s.Equal(res.ID, encontrada.ID)

	_, err = GetReservaByCodigo(s.turista, "RES-0")
	var notFound *NotFoundError
	s.ErrorAs(err, &notFound)
}

func (s *ReservasTestSuite) TestCodigoCacheadoObsoleto() {
	_, err := resolverCodigoCacheado(s.admin, "RES-123", 9999)
	var notFound *NotFoundError
	s.Require().ErrorAs(err, &notFound)
	s.Equal("codigo", notFound.Field, "a stale mapping reports the codigo the caller supplied")
	s.Equal("RES-123", notFound.Value)
}

func (s *ReservasTestSuite) TestGetMisReservas() {
	s.crearReserva(s.turista, 2)
	s.crearReserva(s.turista, 1)
	otro := s.crearUsuario("otro", types.ROL_USER)
	s.crearReserva(otro, 3)

	mias, err := GetMisReservas(s.turista)
	s.Require().NoError(err)
	s.Len(mias, 2)
	for _, r := range mias {
		s.Equal(s.turista.ID, r.Usuario.ID)
	}
}

func (s *ReservasTestSuite) TestGetReservasByPlan() {
	s.crearReserva(s.turista, 2)

	_, err := GetReservasByPlan(s.turista, s.plan.ID)
	s.ErrorIs(err, ErrForbidden)

	delPlan, err := GetReservasByPlan(s.dueno, s.plan.ID)
	s.Require().NoError(err)
	s.Len(delPlan, 1)
}

func (s *ReservasTestSuite) TestGetReservasByMunicipalidad() {
	s.crearReserva(s.turista, 2)

	_, err := GetReservasByMunicipalidad(s.turista, s.plan.MunicipalidadID)
	s.ErrorIs(err, ErrForbidden)

	deMunicipalidad, err := GetReservasByMunicipalidad(s.admin, s.plan.MunicipalidadID)
	s.Require().NoError(err)
	s.Len(deMunicipalidad, 1)
}

func (s *ReservasTestSuite) TestJobsDeCicloDeVida() {
	gdb := db.GetDb()
	ayer := time.Now().UTC().AddDate(0, 0, -1)
	confirmada := models.Reserva{CodigoReserva: NuevoCodigoReserva(), PlanID: s.plan.ID, UsuarioID: s.turista.ID, FechaInicio: ayer, FechaFin: ayer, NumeroPersonas: 1, Estado: types.RESERVA_CONFIRMADA}
	pagada := models.Reserva{CodigoReserva: NuevoCodigoReserva(), PlanID: s.plan.ID, UsuarioID: s.turista.ID, FechaInicio: ayer, FechaFin: ayer, NumeroPersonas: 1, Estado: types.RESERVA_PAGADA}
	pendiente := models.Reserva{CodigoReserva: NuevoCodigoReserva(), PlanID: s.plan.ID, UsuarioID: s.turista.ID, FechaInicio: ayer, FechaFin: ayer, NumeroPersonas: 1, Estado: types.RESERVA_PENDIENTE}
	s.Require().NoError(gdb.Create(&confirmada).Error)
	s.Require().NoError(gdb.Create(&pagada).Error)
	s.Require().NoError(gdb.Create(&pendiente).Error)

	iniciadas, err := IniciarReservasDelDia()
	s.Require().NoError(err)
	s.Equal(int64(2), iniciadas)

	noShows, err := MarcarNoShows()
	s.Require().NoError(err)
	s.Equal(int64(1), noShows)

	var estados []models.Reserva
	s.Require().NoError(gdb.Find(&estados, []uint{confirmada.ID, pagada.ID, pendiente.ID}).Error)
	porID := map[uint]types.EstadoReserva{}
	for _, r := range estados {
		porID[r.ID] = r.Estado
	}
	s.Equal(types.RESERVA_EN_PROCESO, porID[confirmada.ID])
	s.Equal(types.RESERVA_EN_PROCESO, porID[pagada.ID])
	s.Equal(types.RESERVA_NO_SHOW, porID[pendiente.ID])
}

func (s *ReservasTestSuite) TestPagoCompletoAvanzaReserva() {
	res := s.crearReserva(s.turista, 2)
	_, err := ConfirmarReserva(s.dueno, res.ID)
	s.Require().NoError(err)

	pago, err := RegistrarPago(s.turista, &types.CreatePagoRequestBody{
		ReservaID:  res.ID,
		Monto:      res.MontoFinal,
		Tipo:       types.TIPO_PAGO_COMPLETO,
		MetodoPago: types.PAGO_TRANSFERENCIA,
	})
	s.Require().NoError(err)
	s.Equal(types.PAGO_PENDIENTE, pago.Estado)
	s.Regexp(regexp.MustCompile(`^PAG-\d+$`), pago.CodigoPago)

	_, err = ConfirmarPago(s.turista, pago.ID)
	s.ErrorIs(err, ErrForbidden, "only the plan owner or an admin settles payments")

	confirmado, err := ConfirmarPago(s.dueno, pago.ID)
	s.Require().NoError(err)
	s.Equal(types.PAGO_CONFIRMADO, confirmado.Estado)
	s.Require().NotNil(confirmado.FechaConfirmacion)

	var reserva models.Reserva
	s.Require().NoError(db.GetDb().First(&reserva, res.ID).Error)
	s.Equal(types.RESERVA_PAGADA, reserva.Estado, "a settled full payment advances the reservation")
}

func (s *ReservasTestSuite) TestSenaNoAvanzaReserva() {
	res := s.crearReserva(s.turista, 2)
	_, err := ConfirmarReserva(s.dueno, res.ID)
	s.Require().NoError(err)

	pago, err := RegistrarPago(s.turista, &types.CreatePagoRequestBody{
		ReservaID:  res.ID,
		Monto:      50,
		Tipo:       types.TIPO_PAGO_SENA,
		MetodoPago: types.PAGO_EFECTIVO,
	})
	s.Require().NoError(err)
	_, err = ConfirmarPago(s.dueno, pago.ID)
	s.Require().NoError(err)

	var reserva models.Reserva
	s.Require().NoError(db.GetDb().First(&reserva, res.ID).Error)
	s.Equal(types.RESERVA_CONFIRMADA, reserva.Estado, "a deposit leaves the reservation where it was")
}

func (s *ReservasTestSuite) TestPagoSobreReservaCancelada() {
	res := s.crearReserva(s.turista, 2)
	_, err := CancelarReserva(s.turista, res.ID, "ya no voy")
	s.Require().NoError(err)

	_, err = RegistrarPago(s.turista, &types.CreatePagoRequestBody{
		ReservaID:  res.ID,
		Monto:      100,
		Tipo:       types.TIPO_PAGO_COMPLETO,
		MetodoPago: types.PAGO_EFECTIVO,
	})
	var estadoErr *InvalidStateError
	s.ErrorAs(err, &estadoErr)
}

func (s *ReservasTestSuite) TestRechazarPago() {
	res := s.crearReserva(s.turista, 2)
	pago, err := RegistrarPago(s.turista, &types.CreatePagoRequestBody{
		ReservaID:  res.ID,
		Monto:      100,
		Tipo:       types.TIPO_PAGO_COMPLETO,
		MetodoPago: types.PAGO_TARJETA_CREDITO,
	})
	s.Require().NoError(err)

	rechazado, err := RechazarPago(s.dueno, pago.ID)
	s.Require().NoError(err)
	s.Equal(types.PAGO_FALLIDO, rechazado.Estado)

	_, err = ConfirmarPago(s.dueno, pago.ID)
	var estadoErr *InvalidStateError
	s.ErrorAs(err, &estadoErr, "a failed payment cannot be settled afterwards")
}

func TestReservasTestSuite(t *testing.T) {
	suite.Run(t, new(ReservasTestSuite))
}

func TestSiguienteEstado(t *testing.T) {
	casos := []struct {
		accion Accion
		desde  types.EstadoReserva
		hacia  types.EstadoReserva
		ok     bool
	}{
		{AccionConfirmar, types.RESERVA_PENDIENTE, types.RESERVA_CONFIRMADA, true},
		{AccionConfirmar, types.RESERVA_CONFIRMADA, "", false},
		{AccionConfirmar, types.RESERVA_CANCELADA, "", false},
		{AccionPagar, types.RESERVA_CONFIRMADA, types.RESERVA_PAGADA, true},
		{AccionPagar, types.RESERVA_PENDIENTE, "", false},
		{AccionIniciar, types.RESERVA_CONFIRMADA, types.RESERVA_EN_PROCESO, true},
		{AccionIniciar, types.RESERVA_PAGADA, types.RESERVA_EN_PROCESO, true},
		{AccionIniciar, types.RESERVA_PENDIENTE, "", false},
		{AccionCompletar, types.RESERVA_EN_PROCESO, types.RESERVA_COMPLETADA, true},
		{AccionCompletar, types.RESERVA_PAGADA, "", false},
		{AccionCancelar, types.RESERVA_PENDIENTE, types.RESERVA_CANCELADA, true},
		{AccionCancelar, types.RESERVA_CONFIRMADA, types.RESERVA_CANCELADA, true},
		{AccionCancelar, types.RESERVA_PAGADA, types.RESERVA_CANCELADA, true},
		{AccionCancelar, types.RESERVA_EN_PROCESO, types.RESERVA_CANCELADA, true},
		{AccionCancelar, types.RESERVA_NO_SHOW, types.RESERVA_CANCELADA, true},
		{AccionCancelar, types.RESERVA_CANCELADA, "", false},
		{AccionCancelar, types.RESERVA_COMPLETADA, "", false},
		{AccionNoShow, types.RESERVA_PENDIENTE, types.RESERVA_NO_SHOW, true},
		{AccionNoShow, types.RESERVA_PAGADA, "", false},
	}
	for _, c := range casos {
		hacia, err := SiguienteEstado(c.accion, c.desde)
		if c.ok {
			if err != nil {
				t.Errorf("%s desde %s: unexpected error %v", c.accion, c.desde, err)
			} else if hacia != c.hacia {
				t.Errorf("%s desde %s: got %s, want %s", c.accion, c.desde, hacia, c.hacia)
			}
		} else if err == nil {
			t.Errorf("%s desde %s: expected rejection, got %s", c.accion, c.desde, hacia)
		}
	}
}

func TestCodigosUnicos(t *testing.T) {
	vistos := map[string]bool{}
	for i := 0; i < 1000; i++ {
		codigo := NuevoCodigoReserva()
		if vistos[codigo] {
			t.Fatalf("duplicate code %s", codigo)
		}
		vistos[codigo] = true
	}
}
