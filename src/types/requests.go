package types

type RegisterRequestBody struct {
	Nombre   string `json:"nombre" binding:"required"`
	Apellido string `json:"apellido" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Roles    []Rol  `json:"roles,omitempty"`
}

type LoginRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ReservaServicioRequestBody struct {
	ServicioPlanID      uint                  `json:"servicio_plan_id" binding:"required"`
	Incluido            bool                  `json:"incluido"`
	PrecioPersonalizado *float64              `json:"precio_personalizado,omitempty"`
	Observaciones       string                `json:"observaciones,omitempty"`
	Estado              EstadoServicioReserva `json:"estado,omitempty"`
}

type CreateReservaRequestBody struct {
	PlanID                  uint                         `json:"plan_id" binding:"required"`
	FechaInicio             string                       `json:"fecha_inicio" binding:"required,fechareservable" time_format:"2006-01-02"`
	NumeroPersonas          int                          `json:"numero_personas" binding:"required,gt=0"`
	MetodoPago              *MetodoPago                  `json:"metodo_pago,omitempty"`
	Observaciones           string                       `json:"observaciones,omitempty"`
	SolicitudesEspeciales   string                       `json:"solicitudes_especiales,omitempty"`
	ContactoEmergencia      string                       `json:"contacto_emergencia,omitempty"`
	TelefonoEmergencia      string                       `json:"telefono_emergencia,omitempty"`
	ServiciosPersonalizados []ReservaServicioRequestBody `json:"servicios_personalizados,omitempty"`
}

type CancelarReservaRequestBody struct {
	Motivo string `json:"motivo" binding:"required"`
}

type CreatePagoRequestBody struct {
	ReservaID          uint       `json:"reserva_id" binding:"required"`
	Monto              float64    `json:"monto" binding:"required,gt=0"`
	Tipo               TipoPago   `json:"tipo" binding:"required"`
	MetodoPago         MetodoPago `json:"metodo_pago" binding:"required"`
	NumeroTransaccion  string     `json:"numero_transaccion,omitempty"`
	NumeroAutorizacion string     `json:"numero_autorizacion,omitempty"`
	Observaciones      string     `json:"observaciones,omitempty"`
}

type ServicioPlanRequestBody struct {
	ServicioID       uint     `json:"servicio_id" binding:"required"`
	DiaDelPlan       int      `json:"dia_del_plan" binding:"required,gt=0"`
	OrdenEnElDia     int      `json:"orden_en_el_dia,omitempty"`
	HoraInicio       string   `json:"hora_inicio,omitempty"`
	HoraFin          string   `json:"hora_fin,omitempty"`
	PrecioEspecial   *float64 `json:"precio_especial,omitempty"`
	Notas            string   `json:"notas,omitempty"`
	EsOpcional       bool     `json:"es_opcional,omitempty"`
	EsPersonalizable bool     `json:"es_personalizable,omitempty"`
}

type CreatePlanRequestBody struct {
	Nombre          string                    `json:"nombre" binding:"required"`
	Descripcion     string                    `json:"descripcion,omitempty"`
	PrecioTotal     float64                   `json:"precio_total" binding:"required,gt=0"`
	DuracionDias    int                       `json:"duracion_dias" binding:"required,gt=0"`
	CapacidadMaxima int                       `json:"capacidad_maxima" binding:"required,gt=0"`
	NivelDificultad NivelDificultad           `json:"nivel_dificultad,omitempty"`
	MunicipalidadID uint                      `json:"municipalidad_id" binding:"required"`
	Itinerario      string                    `json:"itinerario,omitempty"`
	Incluye         string                    `json:"incluye,omitempty"`
	NoIncluye       string                    `json:"no_incluye,omitempty"`
	Recomendaciones string                    `json:"recomendaciones,omitempty"`
	Requisitos      string                    `json:"requisitos,omitempty"`
	Servicios       []ServicioPlanRequestBody `json:"servicios,omitempty"`
}

type UpdatePlanEstadoRequestBody struct {
	Estado EstadoPlan `json:"estado" binding:"required"`
}

type CreateMunicipalidadRequestBody struct {
	Nombre       string `json:"nombre" binding:"required"`
	Departamento string `json:"departamento" binding:"required"`
	Provincia    string `json:"provincia" binding:"required"`
	Distrito     string `json:"distrito" binding:"required"`
	Direccion    string `json:"direccion,omitempty"`
	Telefono     string `json:"telefono,omitempty"`
	SitioWeb     string `json:"sitio_web,omitempty"`
	Descripcion  string `json:"descripcion,omitempty"`
}

type CreateCategoriaRequestBody struct {
	Nombre      string `json:"nombre" binding:"required"`
	Descripcion string `json:"descripcion,omitempty"`
}

type CreateEmprendedorRequestBody struct {
	NombreEmpresa   string `json:"nombre_empresa" binding:"required"`
	Rubro           string `json:"rubro" binding:"required"`
	Direccion       string `json:"direccion,omitempty"`
	Telefono        string `json:"telefono,omitempty"`
	Email           string `json:"email,omitempty"`
	SitioWeb        string `json:"sitio_web,omitempty"`
	Descripcion     string `json:"descripcion,omitempty"`
	Productos       string `json:"productos,omitempty"`
	Servicios       string `json:"servicios,omitempty"`
	MunicipalidadID uint   `json:"municipalidad_id,omitempty"`
	CategoriaID     uint   `json:"categoria_id,omitempty"`
}

type CreateServicioRequestBody struct {
	Nombre          string       `json:"nombre" binding:"required"`
	Descripcion     string       `json:"descripcion,omitempty"`
	Precio          float64      `json:"precio" binding:"required,gt=0"`
	DuracionHoras   int          `json:"duracion_horas" binding:"required,gt=0"`
	CapacidadMaxima int          `json:"capacidad_maxima" binding:"required,gt=0"`
	Tipo            TipoServicio `json:"tipo" binding:"required"`
	Ubicacion       string       `json:"ubicacion,omitempty"`
	Requisitos      string       `json:"requisitos,omitempty"`
	Incluye         string       `json:"incluye,omitempty"`
	NoIncluye       string       `json:"no_incluye,omitempty"`
	ImagenURL       string       `json:"imagen_url,omitempty"`
}
