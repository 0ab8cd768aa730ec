package domain

type EstatusPago string

const (
	EstatusPagoPendiente EstatusPago = "Pendiente"
	EstatusPagoPagado    EstatusPago = "Pagado"
	EstatusPagoCancelado EstatusPago = "Cancelado"
)

type TipoRenta string

const (
	TipoRentaDay    TipoRenta = "day"
	TipoRentaWeek   TipoRenta = "week"
	TipoRentaMonth  TipoRenta = "month"
	TipoRentaCustom TipoRenta = "custom"
)

// Renta binds a cliente to a spot for a period. Monetary amounts are in
// centavos. Tarifa is snapshotted from the spot at creation time; MontoTotal
// is derived from tarifa and duration and recomputed on every update.
type Renta struct {
	ID                int32       `json:"id_renta"`
	ClienteID         int32       `json:"id_cliente"`
	SpotID            int32       `json:"id_spot"`
	FechaInicio       string      `json:"fecha_inicio"`
	FechaFin          *string     `json:"fecha_fin,omitempty"`
	TipoRenta         TipoRenta   `json:"tipo_renta"`
	TarifaCents       int64       `json:"tarifa"`
	Duracion          *int32      `json:"duracion,omitempty"` // absent for tipo custom
	MontoTotalCents   int64       `json:"monto_total"`
	EstatusPago       EstatusPago `json:"estatus_pago"`
	MotivoCancelacion string      `json:"motivo_cancelacion,omitempty"`
	MetodoPago        MetodoPago  `json:"metodo_pago"`
	Observaciones     string      `json:"observaciones"`
	CreatedOn         string      `json:"created_on"`
	UpdatedOn         string      `json:"updated_on"`
}

// Cancelada reports whether the renta reached its terminal state.
func (r *Renta) Cancelada() bool {
	return r.EstatusPago == EstatusPagoCancelado
}
