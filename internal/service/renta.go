package service

import (
	"context"
	"strings"
	"time"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/logger"
	"rvpark-backend/internal/repository"
	"rvpark-backend/internal/utils"
	"rvpark-backend/internal/validate"
)

type rentaService struct {
	rentaRepo repository.RentaRepository
	spotRepo  repository.SpotRepository
	pagoRepo  repository.PagoRepository
}

func NewRentaService(rentaRepo repository.RentaRepository, spotRepo repository.SpotRepository, pagoRepo repository.PagoRepository) RentaService {
	return &rentaService{
		rentaRepo: rentaRepo,
		spotRepo:  spotRepo,
		pagoRepo:  pagoRepo,
	}
}

// Create registers a renta in estatus Pendiente and moves its spot to Proceso.
// The tarifa is snapshotted from the spot when the caller leaves it at zero,
// and monto_total is always recomputed server side.
func (s *rentaService) Create(ctx context.Context, rt *domain.Renta) error {
	spot, err := s.spotRepo.GetByID(ctx, rt.SpotID)
	if err != nil {
		return err
	}
	if spot.Estado != domain.SpotEstadoDisponible {
		return ErrSpotNoDisponible
	}

	if rt.TarifaCents == 0 {
		rt.TarifaCents = spot.TarifaFor(rt.TipoRenta)
	}

	draft := validate.RentaDraft{
		ClienteID:   rt.ClienteID,
		SpotID:      rt.SpotID,
		FechaInicio: rt.FechaInicio,
		TipoRenta:   rt.TipoRenta,
		TarifaCents: rt.TarifaCents,
	}
	if rt.FechaFin != nil {
		draft.FechaFin = *rt.FechaFin
	}
	if rt.Duracion != nil {
		draft.Duracion = *rt.Duracion
	}
	if err := validationError(validate.Renta(draft)); err != nil {
		return err
	}

	monto, err := utils.CalcularMontoTotal(rt.TipoRenta, rt.TarifaCents, draft.Duracion, rt.FechaInicio, draft.FechaFin)
	if err != nil {
		return err
	}
	rt.MontoTotalCents = monto
	rt.EstatusPago = domain.EstatusPagoPendiente
	rt.MotivoCancelacion = ""

	if err := s.rentaRepo.Create(ctx, rt); err != nil {
		return err
	}

	if err := s.spotRepo.UpdateEstado(ctx, rt.SpotID, domain.SpotEstadoProceso); err != nil {
		logger.Error("failed to move spot to Proceso", "id_spot", rt.SpotID, "error", err)
	}
	return nil
}

func (s *rentaService) GetByID(ctx context.Context, id int32) (*domain.Renta, error) {
	return s.rentaRepo.GetByID(ctx, id)
}

func (s *rentaService) List(ctx context.Context) ([]domain.Renta, error) {
	return s.rentaRepo.List(ctx)
}

func (s *rentaService) ListActivas(ctx context.Context, rvParkID int32) ([]domain.RentaActiva, error) {
	return s.rentaRepo.ListActivas(ctx, rvParkID)
}

// Update edits a non-cancelled renta, recomputing monto_total from the
// submitted tarifa and duration. Moving the renta to another spot releases
// the old one and claims the new one. Estatus and motivo are not editable
// here.
func (s *rentaService) Update(ctx context.Context, rt *domain.Renta) error {
	current, err := s.rentaRepo.GetByID(ctx, rt.ID)
	if err != nil {
		return err
	}
	if current.Cancelada() {
		return ErrRentaCancelada
	}

	if rt.SpotID != current.SpotID {
		nuevo, err := s.spotRepo.GetByID(ctx, rt.SpotID)
		if err != nil {
			return err
		}
		if nuevo.Estado != domain.SpotEstadoDisponible {
			return ErrSpotNoDisponible
		}
	}

	draft := validate.RentaDraft{
		ClienteID:   rt.ClienteID,
		SpotID:      rt.SpotID,
		FechaInicio: rt.FechaInicio,
		TipoRenta:   rt.TipoRenta,
		TarifaCents: rt.TarifaCents,
	}
	if rt.FechaFin != nil {
		draft.FechaFin = *rt.FechaFin
	}
	if rt.Duracion != nil {
		draft.Duracion = *rt.Duracion
	}
	if err := validationError(validate.Renta(draft)); err != nil {
		return err
	}

	monto, err := utils.CalcularMontoTotal(rt.TipoRenta, rt.TarifaCents, draft.Duracion, rt.FechaInicio, draft.FechaFin)
	if err != nil {
		return err
	}
	rt.MontoTotalCents = monto
	rt.EstatusPago = current.EstatusPago
	rt.MotivoCancelacion = current.MotivoCancelacion

	if err := s.rentaRepo.Update(ctx, rt); err != nil {
		return err
	}

	if rt.SpotID != current.SpotID {
		if err := s.spotRepo.UpdateEstado(ctx, current.SpotID, domain.SpotEstadoDisponible); err != nil {
			logger.Error("failed to release previous spot", "id_spot", current.SpotID, "error", err)
		}
		estado := domain.SpotEstadoProceso
		if rt.EstatusPago == domain.EstatusPagoPagado {
			estado = domain.SpotEstadoPagado
		}
		if err := s.spotRepo.UpdateEstado(ctx, rt.SpotID, estado); err != nil {
			logger.Error("failed to claim new spot", "id_spot", rt.SpotID, "error", err)
		}
	}
	return nil
}

// Cancelar moves a renta to its terminal Cancelado state and releases the
// spot. The motivo is stored trimmed and must be at least 10 characters.
func (s *rentaService) Cancelar(ctx context.Context, id int32, motivo string) (*domain.Renta, error) {
	if err := validationError(validate.MotivoCancelacion(motivo)); err != nil {
		return nil, err
	}

	rt, err := s.rentaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rt.Cancelada() {
		return nil, ErrRentaCancelada
	}

	rt.EstatusPago = domain.EstatusPagoCancelado
	rt.MotivoCancelacion = strings.TrimSpace(motivo)
	if err := s.rentaRepo.Update(ctx, rt); err != nil {
		return nil, err
	}

	if err := s.spotRepo.UpdateEstado(ctx, rt.SpotID, domain.SpotEstadoDisponible); err != nil {
		logger.Error("failed to release spot after cancellation", "id_spot", rt.SpotID, "error", err)
	}
	return rt, nil
}

// Finalizar closes out a renta at the end of its stay: the spot returns to
// Disponible and an open-ended renta gets today as its fecha_fin. The estatus
// is left as is, a finalized renta can still show Pendiente balance.
func (s *rentaService) Finalizar(ctx context.Context, id int32) (*domain.Renta, error) {
	rt, err := s.rentaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rt.Cancelada() {
		return nil, ErrRentaCancelada
	}

	if rt.FechaFin == nil {
		hoy := utils.FormatFecha(time.Now().UTC())
		rt.FechaFin = &hoy
	}
	if err := s.rentaRepo.Update(ctx, rt); err != nil {
		return nil, err
	}

	if err := s.spotRepo.UpdateEstado(ctx, rt.SpotID, domain.SpotEstadoDisponible); err != nil {
		logger.Error("failed to release spot after finalization", "id_spot", rt.SpotID, "error", err)
	}
	return rt, nil
}

// Calcular estimates the first payment for a spot over a date range without
// creating anything.
func (s *rentaService) Calcular(ctx context.Context, spotID int32, fechaInicio, fechaFin string) (*utils.CalculoPago, error) {
	spot, err := s.spotRepo.GetByID(ctx, spotID)
	if err != nil {
		return nil, err
	}
	return utils.CalcularPrimerPago(spot, fechaInicio, fechaFin)
}

// Delete removes a renta that has no payments. Rentas with registered pagos
// must be cancelled instead so the money trail survives.
func (s *rentaService) Delete(ctx context.Context, id int32) error {
	count, err := s.pagoRepo.CountByRenta(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrRentaConPagos
	}

	rt, err := s.rentaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.rentaRepo.Delete(ctx, id); err != nil {
		return err
	}

	if !rt.Cancelada() {
		if err := s.spotRepo.UpdateEstado(ctx, rt.SpotID, domain.SpotEstadoDisponible); err != nil {
			logger.Error("failed to release spot after delete", "id_spot", rt.SpotID, "error", err)
		}
	}
	return nil
}
