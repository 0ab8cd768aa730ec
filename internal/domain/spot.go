package domain

type SpotEstado string

const (
	SpotEstadoDisponible SpotEstado = "Disponible"
	SpotEstadoPagado     SpotEstado = "Pagado"
	SpotEstadoProceso    SpotEstado = "Proceso"
	SpotEstadoCaliche    SpotEstado = "Caliche"
)

// Spot is a physical rentable space within an RV park. Estado is derived from
// active rentas: creating a renta moves the spot to Proceso, full payment to
// Pagado, and cancellation or finalization back to Disponible. Tarifa fields
// are in centavos per unit of the corresponding rental type.
type Spot struct {
	ID                int32      `json:"id_spot"`
	CodigoSpot        string     `json:"codigo_spot"`
	RvParkID          int32      `json:"id_rv_park"`
	Estado            SpotEstado `json:"estado"`
	Zona              string     `json:"zona,omitempty"`
	TarifaDiaCents    int64      `json:"tarifa_dia"`
	TarifaSemanaCents int64      `json:"tarifa_semana"`
	TarifaMesCents    int64      `json:"tarifa_mes"`
	CreatedOn         string     `json:"created_on"`
	UpdatedOn         string     `json:"updated_on"`
}

// TarifaFor returns the per-unit tarifa for a rental type. For tipo custom the
// daily tarifa applies.
func (s *Spot) TarifaFor(tipo TipoRenta) int64 {
	switch tipo {
	case TipoRentaWeek:
		return s.TarifaSemanaCents
	case TipoRentaMonth:
		return s.TarifaMesCents
	default:
		return s.TarifaDiaCents
	}
}
