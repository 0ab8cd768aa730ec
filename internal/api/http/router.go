package http

import (
	"github.com/gorilla/mux"

	"rvpark-backend/internal/security"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth    *AuthHandler
	Cliente *ClienteHandler
	RvPark  *RvParkHandler
	Spot    *SpotHandler
	Renta   *RentaHandler
	Pago    *PagoHandler
	Evento  *EventoHandler
	Reporte *ReporteHandler
}

// NewRouter wires all routes under /api/v1. Everything except login sits
// behind the auth middleware.
func NewRouter(tokens security.TokenManager, h Handlers) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)
	router.Use(AuthMiddleware(tokens))

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")

	api.HandleFunc("/clientes", h.Cliente.List).Methods("GET")
	api.HandleFunc("/clientes", h.Cliente.Create).Methods("POST")
	api.HandleFunc("/clientes/{id:[0-9]+}", h.Cliente.Get).Methods("GET")
	api.HandleFunc("/clientes/{id:[0-9]+}", h.Cliente.Update).Methods("PUT")
	api.HandleFunc("/clientes/{id:[0-9]+}", h.Cliente.Delete).Methods("DELETE")

	api.HandleFunc("/rv-parks", h.RvPark.List).Methods("GET")
	api.HandleFunc("/rv-parks", h.RvPark.Create).Methods("POST")
	api.HandleFunc("/rv-parks/{id:[0-9]+}", h.RvPark.Get).Methods("GET")
	api.HandleFunc("/rv-parks/{id:[0-9]+}", h.RvPark.Update).Methods("PUT")
	api.HandleFunc("/rv-parks/{id:[0-9]+}", h.RvPark.Delete).Methods("DELETE")

	api.HandleFunc("/spots", h.Spot.List).Methods("GET")
	api.HandleFunc("/spots", h.Spot.Create).Methods("POST")
	api.HandleFunc("/spots/{id:[0-9]+}", h.Spot.Get).Methods("GET")
	api.HandleFunc("/spots/{id:[0-9]+}", h.Spot.Update).Methods("PUT")
	api.HandleFunc("/spots/{id:[0-9]+}", h.Spot.Delete).Methods("DELETE")

	api.HandleFunc("/rentas", h.Renta.List).Methods("GET")
	api.HandleFunc("/rentas", h.Renta.Create).Methods("POST")
	api.HandleFunc("/rentas/calcular", h.Renta.Calcular).Methods("POST")
	api.HandleFunc("/rentas/finalizar/{id:[0-9]+}", h.Renta.Finalizar).Methods("PUT")
	api.HandleFunc("/rentas/{id:[0-9]+}", h.Renta.Get).Methods("GET")
	api.HandleFunc("/rentas/{id:[0-9]+}", h.Renta.Update).Methods("PUT")
	api.HandleFunc("/rentas/{id:[0-9]+}", h.Renta.Delete).Methods("DELETE")
	api.HandleFunc("/rentas/{id:[0-9]+}/cancelar", h.Renta.Cancelar).Methods("POST")

	api.HandleFunc("/pagos", h.Pago.List).Methods("GET")
	api.HandleFunc("/pagos", h.Pago.Create).Methods("POST")
	api.HandleFunc("/pagos/{id:[0-9]+}", h.Pago.Get).Methods("GET")
	api.HandleFunc("/pagos/{id:[0-9]+}", h.Pago.Update).Methods("PUT")
	api.HandleFunc("/pagos/{id:[0-9]+}", h.Pago.Delete).Methods("DELETE")

	api.HandleFunc("/eventos", h.Evento.List).Methods("GET")
	api.HandleFunc("/eventos", h.Evento.Create).Methods("POST")
	api.HandleFunc("/eventos/{id:[0-9]+}", h.Evento.Get).Methods("GET")
	api.HandleFunc("/eventos/{id:[0-9]+}", h.Evento.Update).Methods("PUT")
	api.HandleFunc("/eventos/{id:[0-9]+}", h.Evento.Delete).Methods("DELETE")

	api.HandleFunc("/reportes/ocupacion", h.Reporte.Ocupacion).Methods("GET")
	api.HandleFunc("/reportes/ingresos", h.Reporte.Ingresos).Methods("GET")
	api.HandleFunc("/reportes/rentas-activas", h.Reporte.RentasActivas).Methods("GET")
	api.HandleFunc("/reportes/pagos-pendientes", h.Reporte.PagosPendientes).Methods("GET")

	return router
}
