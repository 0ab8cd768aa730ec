package domain

// ReporteOcupacion summarizes spot occupancy for one park.
type ReporteOcupacion struct {
	RvParkID    int32   `json:"id_rv_park"`
	Total       int32   `json:"total"`
	Disponibles int32   `json:"disponibles"`
	Pagados     int32   `json:"pagados"`
	EnProceso   int32   `json:"en_proceso"`
	Caliche     int32   `json:"caliche"`
	Ocupacion   float64 `json:"ocupacion_pct"`
}

// ReporteIngresos aggregates collected payments per periodo.
type ReporteIngresos struct {
	Periodo    string `json:"periodo"`
	TotalCents int64  `json:"total"`
	NumPagos   int32  `json:"num_pagos"`
}

// RentaActiva is a renta joined with its cliente and spot for reporting.
type RentaActiva struct {
	Renta
	ClienteNombre string `json:"cliente_nombre"`
	CodigoSpot    string `json:"codigo_spot"`
}

// PagoPendiente describes a renta with an outstanding balance.
type PagoPendiente struct {
	RentaID         int32  `json:"id_renta"`
	ClienteNombre   string `json:"cliente_nombre"`
	CodigoSpot      string `json:"codigo_spot"`
	MontoTotalCents int64  `json:"monto_total"`
	PagadoCents     int64  `json:"total_pagado"`
	SaldoCents      int64  `json:"saldo"`
}
