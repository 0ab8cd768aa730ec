package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rvpark-backend/internal/domain"
)

// MockRentaRepo
type MockRentaRepo struct {
	mock.Mock
}

func (m *MockRentaRepo) Create(ctx context.Context, renta *domain.Renta) error {
	args := m.Called(ctx, renta)
	return args.Error(0)
}
func (m *MockRentaRepo) GetByID(ctx context.Context, id int32) (*domain.Renta, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Renta), args.Error(1)
}
func (m *MockRentaRepo) List(ctx context.Context) ([]domain.Renta, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Renta), args.Error(1)
}
func (m *MockRentaRepo) ListActivas(ctx context.Context, rvParkID int32) ([]domain.RentaActiva, error) {
	args := m.Called(ctx, rvParkID)
	return args.Get(0).([]domain.RentaActiva), args.Error(1)
}
func (m *MockRentaRepo) Update(ctx context.Context, renta *domain.Renta) error {
	args := m.Called(ctx, renta)
	return args.Error(0)
}
func (m *MockRentaRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentaRepo) ListVencidas(ctx context.Context, cutoff string) ([]domain.Renta, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Renta), args.Error(1)
}

// MockSpotRepo
type MockSpotRepo struct {
	mock.Mock
}

func (m *MockSpotRepo) Create(ctx context.Context, spot *domain.Spot) error {
	args := m.Called(ctx, spot)
	return args.Error(0)
}
func (m *MockSpotRepo) CreateBatch(ctx context.Context, spots []domain.Spot) error {
	args := m.Called(ctx, spots)
	return args.Error(0)
}
func (m *MockSpotRepo) GetByID(ctx context.Context, id int32) (*domain.Spot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Spot), args.Error(1)
}
func (m *MockSpotRepo) List(ctx context.Context, rvParkID int32, estado string) ([]domain.Spot, error) {
	args := m.Called(ctx, rvParkID, estado)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Spot), args.Error(1)
}
func (m *MockSpotRepo) Update(ctx context.Context, spot *domain.Spot) error {
	args := m.Called(ctx, spot)
	return args.Error(0)
}
func (m *MockSpotRepo) UpdateEstado(ctx context.Context, id int32, estado domain.SpotEstado) error {
	args := m.Called(ctx, id, estado)
	return args.Error(0)
}
func (m *MockSpotRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPagoRepo
type MockPagoRepo struct {
	mock.Mock
}

func (m *MockPagoRepo) Create(ctx context.Context, pago *domain.Pago) error {
	args := m.Called(ctx, pago)
	return args.Error(0)
}
func (m *MockPagoRepo) GetByID(ctx context.Context, id int32) (*domain.Pago, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pago), args.Error(1)
}
func (m *MockPagoRepo) List(ctx context.Context, rentaID int32, periodo string) ([]domain.Pago, error) {
	args := m.Called(ctx, rentaID, periodo)
	return args.Get(0).([]domain.Pago), args.Error(1)
}
func (m *MockPagoRepo) SumByRenta(ctx context.Context, rentaID int32) (int64, error) {
	args := m.Called(ctx, rentaID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockPagoRepo) CountByRenta(ctx context.Context, rentaID int32) (int32, error) {
	args := m.Called(ctx, rentaID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockPagoRepo) Update(ctx context.Context, pago *domain.Pago) error {
	args := m.Called(ctx, pago)
	return args.Error(0)
}
func (m *MockPagoRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRvParkRepo
type MockRvParkRepo struct {
	mock.Mock
}

func (m *MockRvParkRepo) Create(ctx context.Context, park *domain.RvPark) error {
	args := m.Called(ctx, park)
	return args.Error(0)
}
func (m *MockRvParkRepo) GetByID(ctx context.Context, id int32) (*domain.RvPark, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RvPark), args.Error(1)
}
func (m *MockRvParkRepo) List(ctx context.Context) ([]domain.RvPark, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RvPark), args.Error(1)
}
func (m *MockRvParkRepo) Update(ctx context.Context, park *domain.RvPark) error {
	args := m.Called(ctx, park)
	return args.Error(0)
}
func (m *MockRvParkRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockClienteRepo
type MockClienteRepo struct {
	mock.Mock
}

func (m *MockClienteRepo) Create(ctx context.Context, cliente *domain.Cliente) error {
	args := m.Called(ctx, cliente)
	return args.Error(0)
}
func (m *MockClienteRepo) GetByID(ctx context.Context, id int32) (*domain.Cliente, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cliente), args.Error(1)
}
func (m *MockClienteRepo) GetByNombreUsuario(ctx context.Context, nombreUsuario string) (*domain.Cliente, error) {
	args := m.Called(ctx, nombreUsuario)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cliente), args.Error(1)
}
func (m *MockClienteRepo) List(ctx context.Context) ([]domain.Cliente, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Cliente), args.Error(1)
}
func (m *MockClienteRepo) Update(ctx context.Context, cliente *domain.Cliente) error {
	args := m.Called(ctx, cliente)
	return args.Error(0)
}
func (m *MockClienteRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUsuarioRepo
type MockUsuarioRepo struct {
	mock.Mock
}

func (m *MockUsuarioRepo) Create(ctx context.Context, usuario *domain.Usuario) error {
	args := m.Called(ctx, usuario)
	return args.Error(0)
}
func (m *MockUsuarioRepo) GetByID(ctx context.Context, id int32) (*domain.Usuario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Usuario), args.Error(1)
}
func (m *MockUsuarioRepo) GetByNombreUsuario(ctx context.Context, nombreUsuario string) (*domain.Usuario, error) {
	args := m.Called(ctx, nombreUsuario)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Usuario), args.Error(1)
}
