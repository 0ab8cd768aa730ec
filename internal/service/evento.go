package service

import (
	"context"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/repository"
	"rvpark-backend/internal/validate"
)

type eventoService struct {
	eventoRepo repository.EventoRepository
}

func NewEventoService(eventoRepo repository.EventoRepository) EventoService {
	return &eventoService{eventoRepo: eventoRepo}
}

func (s *eventoService) Create(ctx context.Context, ev *domain.Evento) error {
	if err := s.validar(ev); err != nil {
		return err
	}
	if ev.TipoEvento == "" {
		ev.TipoEvento = domain.TipoEventoOtro
	}
	return s.eventoRepo.Create(ctx, ev)
}

func (s *eventoService) GetByID(ctx context.Context, id int32) (*domain.Evento, error) {
	return s.eventoRepo.GetByID(ctx, id)
}

func (s *eventoService) List(ctx context.Context, filter domain.EventoFilter) ([]domain.Evento, error) {
	return s.eventoRepo.List(ctx, filter)
}

func (s *eventoService) Update(ctx context.Context, ev *domain.Evento) error {
	if err := s.validar(ev); err != nil {
		return err
	}
	return s.eventoRepo.Update(ctx, ev)
}

func (s *eventoService) Delete(ctx context.Context, id int32) error {
	return s.eventoRepo.Delete(ctx, id)
}

func (s *eventoService) validar(ev *domain.Evento) error {
	return validationError(validate.Evento(validate.EventoDraft{
		RvParkID:    ev.RvParkID,
		Nombre:      ev.Nombre,
		FechaInicio: ev.FechaInicio,
		FechaFin:    ev.FechaFin,
	}))
}
