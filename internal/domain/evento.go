package domain

type TipoEvento string

const (
	TipoEventoMantenimiento TipoEvento = "mantenimiento"
	TipoEventoReservacion   TipoEvento = "reservacion"
	TipoEventoComunitario   TipoEvento = "comunitario"
	TipoEventoOtro          TipoEvento = "otro"
)

// Evento is a scheduled occurrence within a park. FechaFin must be strictly
// after FechaInicio.
type Evento struct {
	ID          int32      `json:"id_evento"`
	RvParkID    int32      `json:"id_rv_park"`
	Nombre      string     `json:"nombre"`
	Descripcion string     `json:"descripcion,omitempty"`
	FechaInicio string     `json:"fecha_inicio"`
	FechaFin    string     `json:"fecha_fin"`
	TipoEvento  TipoEvento `json:"tipo_evento"`
	CreatedOn   string     `json:"created_on"`
	UpdatedOn   string     `json:"updated_on"`
}

// EventoFilter narrows evento listings. Zero values mean "no filter".
type EventoFilter struct {
	RvParkID    int32
	TipoEvento  string
	FechaInicio string
	FechaFin    string
}
