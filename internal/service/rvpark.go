package service

import (
	"context"
	"fmt"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/repository"
	"rvpark-backend/internal/validate"
)

type rvParkService struct {
	parkRepo repository.RvParkRepository
	spotRepo repository.SpotRepository
}

func NewRvParkService(parkRepo repository.RvParkRepository, spotRepo repository.SpotRepository) RvParkService {
	return &rvParkService{
		parkRepo: parkRepo,
		spotRepo: spotRepo,
	}
}

// GenerarCodigos produces cantidad spot codes in order: A01..A99, B01..B99
// and so on, 99 codes per letter block.
func GenerarCodigos(cantidad int32) []string {
	codigos := make([]string, 0, cantidad)
	for i := int32(0); i < cantidad; i++ {
		letra := rune('A' + i/99)
		num := i%99 + 1
		codigos = append(codigos, fmt.Sprintf("%c%02d", letra, num))
	}
	return codigos
}

func (s *rvParkService) Create(ctx context.Context, park *domain.RvPark, generar *GenerarSpotsOptions) error {
	draft := validate.RvParkDraft{
		Nombre:   park.Nombre,
		Email:    park.Email,
		Telefono: park.Telefono,
	}
	if generar != nil {
		draft.GenerarSpots = true
		draft.CantidadSpots = generar.Cantidad
	}
	if err := validationError(validate.RvPark(draft)); err != nil {
		return err
	}

	if err := s.parkRepo.Create(ctx, park); err != nil {
		return err
	}

	if generar == nil {
		return nil
	}

	codigos := GenerarCodigos(generar.Cantidad)
	spots := make([]domain.Spot, 0, len(codigos))
	for _, codigo := range codigos {
		spots = append(spots, domain.Spot{
			CodigoSpot:        codigo,
			RvParkID:          park.ID,
			Estado:            domain.SpotEstadoDisponible,
			Zona:              generar.Zona,
			TarifaDiaCents:    generar.TarifaDiaCents,
			TarifaSemanaCents: generar.TarifaSemanaCents,
			TarifaMesCents:    generar.TarifaMesCents,
		})
	}
	return s.spotRepo.CreateBatch(ctx, spots)
}

func (s *rvParkService) GetByID(ctx context.Context, id int32) (*domain.RvPark, error) {
	return s.parkRepo.GetByID(ctx, id)
}

func (s *rvParkService) List(ctx context.Context) ([]domain.RvPark, error) {
	return s.parkRepo.List(ctx)
}

func (s *rvParkService) Update(ctx context.Context, park *domain.RvPark) error {
	errs := validate.RvPark(validate.RvParkDraft{
		Nombre:   park.Nombre,
		Email:    park.Email,
		Telefono: park.Telefono,
	})
	if err := validationError(errs); err != nil {
		return err
	}
	return s.parkRepo.Update(ctx, park)
}

func (s *rvParkService) Delete(ctx context.Context, id int32) error {
	return s.parkRepo.Delete(ctx, id)
}
