package domain

type MetodoPago string

const (
	MetodoPagoEfectivo      MetodoPago = "Efectivo"
	MetodoPagoTarjeta       MetodoPago = "Tarjeta"
	MetodoPagoTransferencia MetodoPago = "Transferencia"
)

// Pago is one payment applied to exactly one renta. Monto is in centavos and
// must never exceed the renta's outstanding balance at registration time.
// Periodo is the YYYY-MM label derived from FechaPago, used for report grouping.
type Pago struct {
	ID         int32      `json:"id_pago"`
	RentaID    int32      `json:"id_renta"`
	FechaPago  string     `json:"fecha_pago"`
	MontoCents int64      `json:"monto"`
	MetodoPago MetodoPago `json:"metodo_pago"`
	Referencia string     `json:"referencia,omitempty"`
	Folio      string     `json:"folio"`
	Periodo    string     `json:"periodo"`
	CreatedOn  string     `json:"created_on"`
	UpdatedOn  string     `json:"updated_on"`
}
