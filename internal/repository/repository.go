package repository

import (
	"context"

	"rvpark-backend/internal/domain"
)

type ClienteRepository interface {
	Create(ctx context.Context, cliente *domain.Cliente) error
	GetByID(ctx context.Context, id int32) (*domain.Cliente, error)
	GetByNombreUsuario(ctx context.Context, nombreUsuario string) (*domain.Cliente, error)
	List(ctx context.Context) ([]domain.Cliente, error)
	Update(ctx context.Context, cliente *domain.Cliente) error
	Delete(ctx context.Context, id int32) error
}

type RvParkRepository interface {
	Create(ctx context.Context, park *domain.RvPark) error
	GetByID(ctx context.Context, id int32) (*domain.RvPark, error)
	List(ctx context.Context) ([]domain.RvPark, error)
	Update(ctx context.Context, park *domain.RvPark) error
	Delete(ctx context.Context, id int32) error
}

type SpotRepository interface {
	Create(ctx context.Context, spot *domain.Spot) error
	CreateBatch(ctx context.Context, spots []domain.Spot) error
	GetByID(ctx context.Context, id int32) (*domain.Spot, error)
	List(ctx context.Context, rvParkID int32, estado string) ([]domain.Spot, error)
	Update(ctx context.Context, spot *domain.Spot) error
	UpdateEstado(ctx context.Context, id int32, estado domain.SpotEstado) error
	Delete(ctx context.Context, id int32) error
}

type RentaRepository interface {
	Create(ctx context.Context, renta *domain.Renta) error
	GetByID(ctx context.Context, id int32) (*domain.Renta, error)
	List(ctx context.Context) ([]domain.Renta, error)
	ListActivas(ctx context.Context, rvParkID int32) ([]domain.RentaActiva, error)
	Update(ctx context.Context, renta *domain.Renta) error
	Delete(ctx context.Context, id int32) error
	// ListVencidas returns rentas with a fecha_fin before the cutoff date
	// whose estatus is not Cancelado.
	ListVencidas(ctx context.Context, cutoff string) ([]domain.Renta, error)
}

type PagoRepository interface {
	Create(ctx context.Context, pago *domain.Pago) error
	GetByID(ctx context.Context, id int32) (*domain.Pago, error)
	List(ctx context.Context, rentaID int32, periodo string) ([]domain.Pago, error)
	SumByRenta(ctx context.Context, rentaID int32) (int64, error)
	CountByRenta(ctx context.Context, rentaID int32) (int32, error)
	Update(ctx context.Context, pago *domain.Pago) error
	Delete(ctx context.Context, id int32) error
}

type EventoRepository interface {
	Create(ctx context.Context, evento *domain.Evento) error
	GetByID(ctx context.Context, id int32) (*domain.Evento, error)
	List(ctx context.Context, filter domain.EventoFilter) ([]domain.Evento, error)
	Update(ctx context.Context, evento *domain.Evento) error
	Delete(ctx context.Context, id int32) error
}

type UsuarioRepository interface {
	Create(ctx context.Context, usuario *domain.Usuario) error
	GetByID(ctx context.Context, id int32) (*domain.Usuario, error)
	GetByNombreUsuario(ctx context.Context, nombreUsuario string) (*domain.Usuario, error)
}

type ReporteRepository interface {
	Ocupacion(ctx context.Context, rvParkID int32) (*domain.ReporteOcupacion, error)
	Ingresos(ctx context.Context, rvParkID int32, fechaInicio, fechaFin string) ([]domain.ReporteIngresos, error)
	PagosPendientes(ctx context.Context, rvParkID int32) ([]domain.PagoPendiente, error)
}
