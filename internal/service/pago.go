package service

import (
	"context"

	"github.com/google/uuid"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/logger"
	"rvpark-backend/internal/repository"
	"rvpark-backend/internal/utils"
	"rvpark-backend/internal/validate"
)

type pagoService struct {
	pagoRepo  repository.PagoRepository
	rentaRepo repository.RentaRepository
	spotRepo  repository.SpotRepository
}

func NewPagoService(pagoRepo repository.PagoRepository, rentaRepo repository.RentaRepository, spotRepo repository.SpotRepository) PagoService {
	return &pagoService{
		pagoRepo:  pagoRepo,
		rentaRepo: rentaRepo,
		spotRepo:  spotRepo,
	}
}

// Create registers a payment against a renta. The monto may not exceed the
// outstanding balance; when the balance reaches zero the renta moves to
// Pagado and the spot follows.
func (s *pagoService) Create(ctx context.Context, p *domain.Pago) error {
	rt, err := s.rentaRepo.GetByID(ctx, p.RentaID)
	if err != nil {
		return err
	}
	if rt.Cancelada() {
		return ErrRentaCancelada
	}

	pagado, err := s.pagoRepo.SumByRenta(ctx, p.RentaID)
	if err != nil {
		return err
	}
	saldo := rt.MontoTotalCents - pagado

	errs := validate.Pago(validate.PagoDraft{
		RentaID:    p.RentaID,
		FechaPago:  p.FechaPago,
		MontoCents: p.MontoCents,
		MetodoPago: p.MetodoPago,
		SaldoCents: saldo,
	})
	if err := validationError(errs); err != nil {
		return err
	}

	p.Folio = uuid.NewString()
	p.Periodo = utils.Periodo(p.FechaPago)

	if err := s.pagoRepo.Create(ctx, p); err != nil {
		return err
	}

	if pagado+p.MontoCents >= rt.MontoTotalCents {
		rt.EstatusPago = domain.EstatusPagoPagado
		if err := s.rentaRepo.Update(ctx, rt); err != nil {
			return err
		}
		if err := s.spotRepo.UpdateEstado(ctx, rt.SpotID, domain.SpotEstadoPagado); err != nil {
			logger.Error("failed to move spot to Pagado", "id_spot", rt.SpotID, "error", err)
		}
	}
	return nil
}

func (s *pagoService) GetByID(ctx context.Context, id int32) (*domain.Pago, error) {
	return s.pagoRepo.GetByID(ctx, id)
}

func (s *pagoService) List(ctx context.Context, rentaID int32, periodo string) ([]domain.Pago, error) {
	return s.pagoRepo.List(ctx, rentaID, periodo)
}

// Update edits a payment's monto, fecha, metodo or referencia. The monto is
// re-checked against the balance with this payment excluded, and the renta
// estatus is re-derived in both directions: an edit can complete the renta
// or drop it back to Pendiente. The renta and folio are not editable.
func (s *pagoService) Update(ctx context.Context, p *domain.Pago) error {
	current, err := s.pagoRepo.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	rt, err := s.rentaRepo.GetByID(ctx, current.RentaID)
	if err != nil {
		return err
	}
	if rt.Cancelada() {
		return ErrRentaCancelada
	}

	pagado, err := s.pagoRepo.SumByRenta(ctx, current.RentaID)
	if err != nil {
		return err
	}
	saldo := rt.MontoTotalCents - (pagado - current.MontoCents)

	p.RentaID = current.RentaID
	errs := validate.Pago(validate.PagoDraft{
		RentaID:    p.RentaID,
		FechaPago:  p.FechaPago,
		MontoCents: p.MontoCents,
		MetodoPago: p.MetodoPago,
		SaldoCents: saldo,
	})
	if err := validationError(errs); err != nil {
		return err
	}

	p.Folio = current.Folio
	p.Periodo = utils.Periodo(p.FechaPago)

	if err := s.pagoRepo.Update(ctx, p); err != nil {
		return err
	}

	nuevoPagado := pagado - current.MontoCents + p.MontoCents
	switch {
	case nuevoPagado >= rt.MontoTotalCents && rt.EstatusPago != domain.EstatusPagoPagado:
		rt.EstatusPago = domain.EstatusPagoPagado
		if err := s.rentaRepo.Update(ctx, rt); err != nil {
			return err
		}
		if err := s.spotRepo.UpdateEstado(ctx, rt.SpotID, domain.SpotEstadoPagado); err != nil {
			logger.Error("failed to move spot to Pagado", "id_spot", rt.SpotID, "error", err)
		}
	case nuevoPagado < rt.MontoTotalCents && rt.EstatusPago == domain.EstatusPagoPagado:
		rt.EstatusPago = domain.EstatusPagoPendiente
		if err := s.rentaRepo.Update(ctx, rt); err != nil {
			return err
		}
		if err := s.spotRepo.UpdateEstado(ctx, rt.SpotID, domain.SpotEstadoProceso); err != nil {
			logger.Error("failed to move spot back to Proceso", "id_spot", rt.SpotID, "error", err)
		}
	}
	return nil
}

// Delete removes a payment and re-derives the renta estatus from the
// remaining pagos, so a fully paid renta drops back to Pendiente when a
// payment is reversed.
func (s *pagoService) Delete(ctx context.Context, id int32) error {
	p, err := s.pagoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.pagoRepo.Delete(ctx, id); err != nil {
		return err
	}

	rt, err := s.rentaRepo.GetByID(ctx, p.RentaID)
	if err != nil {
		return err
	}
	if rt.Cancelada() {
		return nil
	}

	pagado, err := s.pagoRepo.SumByRenta(ctx, p.RentaID)
	if err != nil {
		return err
	}
	if pagado < rt.MontoTotalCents && rt.EstatusPago == domain.EstatusPagoPagado {
		rt.EstatusPago = domain.EstatusPagoPendiente
		if err := s.rentaRepo.Update(ctx, rt); err != nil {
			return err
		}
		if err := s.spotRepo.UpdateEstado(ctx, rt.SpotID, domain.SpotEstadoProceso); err != nil {
			logger.Error("failed to move spot back to Proceso", "id_spot", rt.SpotID, "error", err)
		}
	}
	return nil
}
