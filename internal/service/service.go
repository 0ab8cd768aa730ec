package service

import (
	"context"
	"errors"
	"strings"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/utils"
	"rvpark-backend/internal/validate"
)

var (
	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")
	ErrRentaCancelada        = errors.New("la renta está cancelada y no admite cambios")
	ErrRentaConPagos         = errors.New("no se puede eliminar una renta con pagos registrados")
	ErrSpotNoDisponible      = errors.New("el spot no está disponible")
)

// ValidationError carries the per-field messages produced by a validator. The
// HTTP layer renders it as a 400 with the field map.
type ValidationError struct {
	Fields validate.Errors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

func validationError(errs validate.Errors) error {
	if errs.Valid() {
		return nil
	}
	return &ValidationError{Fields: errs}
}

type AuthService interface {
	Login(ctx context.Context, nombreUsuario, password string) (string, *domain.Usuario, error)
}

type ClienteService interface {
	Create(ctx context.Context, cliente *domain.Cliente, password string) error
	GetByID(ctx context.Context, id int32) (*domain.Cliente, error)
	List(ctx context.Context) ([]domain.Cliente, error)
	Update(ctx context.Context, cliente *domain.Cliente) error
	Delete(ctx context.Context, id int32) error
}

// GenerarSpotsOptions describes the bulk spot generation requested alongside
// park creation. Codes run A01..A99, B01.. in order.
type GenerarSpotsOptions struct {
	Cantidad          int32
	Zona              string
	TarifaDiaCents    int64
	TarifaSemanaCents int64
	TarifaMesCents    int64
}

type RvParkService interface {
	Create(ctx context.Context, park *domain.RvPark, generar *GenerarSpotsOptions) error
	GetByID(ctx context.Context, id int32) (*domain.RvPark, error)
	List(ctx context.Context) ([]domain.RvPark, error)
	Update(ctx context.Context, park *domain.RvPark) error
	Delete(ctx context.Context, id int32) error
}

type SpotService interface {
	Create(ctx context.Context, spot *domain.Spot) error
	GetByID(ctx context.Context, id int32) (*domain.Spot, error)
	List(ctx context.Context, rvParkID int32, estado string) ([]domain.Spot, error)
	Update(ctx context.Context, spot *domain.Spot) error
	Delete(ctx context.Context, id int32) error
	RefreshSnapshot(ctx context.Context, rvParkID int32) error
}

type RentaService interface {
	Create(ctx context.Context, renta *domain.Renta) error
	GetByID(ctx context.Context, id int32) (*domain.Renta, error)
	List(ctx context.Context) ([]domain.Renta, error)
	ListActivas(ctx context.Context, rvParkID int32) ([]domain.RentaActiva, error)
	Update(ctx context.Context, renta *domain.Renta) error
	Cancelar(ctx context.Context, id int32, motivo string) (*domain.Renta, error)
	Finalizar(ctx context.Context, id int32) (*domain.Renta, error)
	Calcular(ctx context.Context, spotID int32, fechaInicio, fechaFin string) (*utils.CalculoPago, error)
	Delete(ctx context.Context, id int32) error
}

type PagoService interface {
	Create(ctx context.Context, pago *domain.Pago) error
	GetByID(ctx context.Context, id int32) (*domain.Pago, error)
	List(ctx context.Context, rentaID int32, periodo string) ([]domain.Pago, error)
	Update(ctx context.Context, pago *domain.Pago) error
	Delete(ctx context.Context, id int32) error
}

type EventoService interface {
	Create(ctx context.Context, evento *domain.Evento) error
	GetByID(ctx context.Context, id int32) (*domain.Evento, error)
	List(ctx context.Context, filter domain.EventoFilter) ([]domain.Evento, error)
	Update(ctx context.Context, evento *domain.Evento) error
	Delete(ctx context.Context, id int32) error
}

type ReporteService interface {
	Ocupacion(ctx context.Context, rvParkID int32) (*domain.ReporteOcupacion, error)
	Ingresos(ctx context.Context, rvParkID int32, fechaInicio, fechaFin string) ([]domain.ReporteIngresos, error)
	RentasActivas(ctx context.Context, rvParkID int32) ([]domain.RentaActiva, error)
	PagosPendientes(ctx context.Context, rvParkID int32) ([]domain.PagoPendiente, error)
}
