package jobs

import (
	"context"
	"time"

	"rvpark-backend/internal/logger"
)

// FinalizeExpiredRentals releases the spots of rentas whose fecha_fin has
// passed.  The renta record itself keeps its estatus: an underpaid expired
// renta still shows as Pendiente in the pagos-pendientes report.
func (jr *JobRunner) FinalizeExpiredRentals() {
	jr.runWithRecovery("FinalizeExpiredRentals", func() {
		ctx := context.Background()
		hoy := time.Now().UTC().Format("2006-01-02")

		vencidas, err := jr.store.RentaRepository.ListVencidas(ctx, hoy)
		if err != nil {
			logger.Error("Failed to list expired rentas", "error", err)
			return
		}

		count := 0
		for _, rt := range vencidas {
			if _, err := jr.services.Renta.Finalizar(ctx, rt.ID); err != nil {
				logger.Error("Failed to finalize expired renta", "id_renta", rt.ID, "error", err)
				continue
			}
			logger.Debug("Finalized expired renta",
				"id_renta", rt.ID,
				"id_spot", rt.SpotID,
				"fecha_fin", rt.FechaFin)
			count++
		}

		logger.Info("Finalized expired rentas", "count", count)
	})
}

// RefreshSpotSnapshots rewrites the cached spots-per-park snapshots from the
// database.
func (jr *JobRunner) RefreshSpotSnapshots() {
	jr.runWithRecovery("RefreshSpotSnapshots", func() {
		ctx := context.Background()

		parks, err := jr.store.RvParkRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list parks for snapshot refresh", "error", err)
			return
		}

		count := 0
		for _, park := range parks {
			if err := jr.services.Spot.RefreshSnapshot(ctx, park.ID); err != nil {
				logger.Error("Failed to refresh spot snapshot", "id_rv_park", park.ID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Refreshed spot snapshots", "count", count)
	})
}
