package service

import (
	"context"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/repository"
)

type reporteService struct {
	reporteRepo repository.ReporteRepository
	rentaRepo   repository.RentaRepository
}

func NewReporteService(reporteRepo repository.ReporteRepository, rentaRepo repository.RentaRepository) ReporteService {
	return &reporteService{
		reporteRepo: reporteRepo,
		rentaRepo:   rentaRepo,
	}
}

func (s *reporteService) Ocupacion(ctx context.Context, rvParkID int32) (*domain.ReporteOcupacion, error) {
	return s.reporteRepo.Ocupacion(ctx, rvParkID)
}

func (s *reporteService) Ingresos(ctx context.Context, rvParkID int32, fechaInicio, fechaFin string) ([]domain.ReporteIngresos, error) {
	return s.reporteRepo.Ingresos(ctx, rvParkID, fechaInicio, fechaFin)
}

func (s *reporteService) RentasActivas(ctx context.Context, rvParkID int32) ([]domain.RentaActiva, error) {
	return s.rentaRepo.ListActivas(ctx, rvParkID)
}

func (s *reporteService) PagosPendientes(ctx context.Context, rvParkID int32) ([]domain.PagoPendiente, error) {
	return s.reporteRepo.PagosPendientes(ctx, rvParkID)
}
