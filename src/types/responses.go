package types

import "time"

// Reduced views returned by the reservation projection. Full entities are
// never exposed through the reservation surface.

type MunicipalidadBasicResponse struct {
	ID           uint   `json:"id"`
	Nombre       string `json:"nombre"`
	Departamento string `json:"departamento"`
	Provincia    string `json:"provincia"`
	Distrito     string `json:"distrito"`
}

type UsuarioBasicResponse struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type PlanTuristicoBasicResponse struct {
	ID                 uint                       `json:"id"`
	Nombre             string                     `json:"nombre"`
	Descripcion        string                     `json:"descripcion,omitempty"`
	PrecioTotal        float64                    `json:"precio_total"`
	DuracionDias       int                        `json:"duracion_dias"`
	CapacidadMaxima    int                        `json:"capacidad_maxima"`
	Estado             EstadoPlan                 `json:"estado"`
	NivelDificultad    NivelDificultad            `json:"nivel_dificultad,omitempty"`
	ImagenPrincipalURL string                     `json:"imagen_principal_url,omitempty"`
	Municipalidad      MunicipalidadBasicResponse `json:"municipalidad"`
}

type ReservaResponse struct {
	ID                    uint                       `json:"id"`
	CodigoReserva         string                     `json:"codigo_reserva"`
	FechaInicio           string                     `json:"fecha_inicio"`
	FechaFin              string                     `json:"fecha_fin"`
	NumeroPersonas        int                        `json:"numero_personas"`
	MontoTotal            float64                    `json:"monto_total"`
	MontoDescuento        float64                    `json:"monto_descuento"`
	MontoFinal            float64                    `json:"monto_final"`
	Estado                EstadoReserva              `json:"estado"`
	MetodoPago            *MetodoPago                `json:"metodo_pago,omitempty"`
	Observaciones         string                     `json:"observaciones,omitempty"`
	SolicitudesEspeciales string                     `json:"solicitudes_especiales,omitempty"`
	ContactoEmergencia    string                     `json:"contacto_emergencia,omitempty"`
	TelefonoEmergencia    string                     `json:"telefono_emergencia,omitempty"`
	FechaReserva          time.Time                  `json:"fecha_reserva"`
	FechaConfirmacion     *time.Time                 `json:"fecha_confirmacion,omitempty"`
	FechaCancelacion      *time.Time                 `json:"fecha_cancelacion,omitempty"`
	MotivoCancelacion     string                     `json:"motivo_cancelacion,omitempty"`
	Plan                  PlanTuristicoBasicResponse `json:"plan"`
	Usuario               UsuarioBasicResponse       `json:"usuario"`
}

type AuthResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Roles     []Rol  `json:"roles"`
}
