package service

import (
	"context"

	"rvpark-backend/internal/cache"
	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/logger"
	"rvpark-backend/internal/repository"
	"rvpark-backend/internal/validate"
)

type spotService struct {
	spotRepo repository.SpotRepository
	spots    *cache.SpotCache
}

func NewSpotService(spotRepo repository.SpotRepository, spots *cache.SpotCache) SpotService {
	return &spotService{
		spotRepo: spotRepo,
		spots:    spots,
	}
}

func (s *spotService) Create(ctx context.Context, spot *domain.Spot) error {
	errs := validate.Spot(validate.SpotDraft{
		CodigoSpot: spot.CodigoSpot,
		RvParkID:   spot.RvParkID,
		Estado:     spot.Estado,
	})
	if err := validationError(errs); err != nil {
		return err
	}
	if err := s.spotRepo.Create(ctx, spot); err != nil {
		return err
	}
	s.invalidate(ctx, spot.RvParkID)
	return nil
}

func (s *spotService) GetByID(ctx context.Context, id int32) (*domain.Spot, error) {
	return s.spotRepo.GetByID(ctx, id)
}

// List returns spots, optionally filtered by park and estado. Unfiltered
// per-park listings refresh the park's snapshot, and when the database is
// down the last snapshot serves as a stale fallback.
func (s *spotService) List(ctx context.Context, rvParkID int32, estado string) ([]domain.Spot, error) {
	spots, err := s.spotRepo.List(ctx, rvParkID, estado)
	if err != nil {
		if rvParkID != 0 {
			if cached, cacheErr := s.spots.GetSpots(ctx, rvParkID); cacheErr == nil {
				logger.Warn("serving spot snapshot, database unavailable", "id_rv_park", rvParkID, "error", err)
				return filterEstado(cached, estado), nil
			}
		}
		return nil, err
	}

	if rvParkID != 0 && estado == "" {
		if err := s.spots.SetSpots(ctx, rvParkID, spots); err != nil {
			logger.Warn("failed to refresh spot snapshot", "id_rv_park", rvParkID, "error", err)
		}
	}
	return spots, nil
}

func filterEstado(spots []domain.Spot, estado string) []domain.Spot {
	if estado == "" {
		return spots
	}
	filtered := make([]domain.Spot, 0, len(spots))
	for _, sp := range spots {
		if string(sp.Estado) == estado {
			filtered = append(filtered, sp)
		}
	}
	return filtered
}

func (s *spotService) Update(ctx context.Context, spot *domain.Spot) error {
	errs := validate.Spot(validate.SpotDraft{
		CodigoSpot: spot.CodigoSpot,
		RvParkID:   spot.RvParkID,
		Estado:     spot.Estado,
	})
	if err := validationError(errs); err != nil {
		return err
	}
	if err := s.spotRepo.Update(ctx, spot); err != nil {
		return err
	}
	s.invalidate(ctx, spot.RvParkID)
	return nil
}

func (s *spotService) Delete(ctx context.Context, id int32) error {
	spot, err := s.spotRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.spotRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, spot.RvParkID)
	return nil
}

// RefreshSnapshot rebuilds the cached snapshot for one park from the
// database.
func (s *spotService) RefreshSnapshot(ctx context.Context, rvParkID int32) error {
	spots, err := s.spotRepo.List(ctx, rvParkID, "")
	if err != nil {
		return err
	}
	return s.spots.SetSpots(ctx, rvParkID, spots)
}

func (s *spotService) invalidate(ctx context.Context, rvParkID int32) {
	if err := s.spots.Invalidate(ctx, rvParkID); err != nil {
		logger.Warn("failed to invalidate spot snapshot", "id_rv_park", rvParkID, "error", err)
	}
}
