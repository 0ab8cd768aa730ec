package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"rvpark-backend/internal/domain"
)

func TestSpotRepository_CreateBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewSpotRepository(db)
	ctx := context.Background()

	spots := []domain.Spot{
		{CodigoSpot: "A01", RvParkID: 5, Estado: domain.SpotEstadoDisponible, TarifaDiaCents: 150},
		{CodigoSpot: "A02", RvParkID: 5, Estado: domain.SpotEstadoDisponible, TarifaDiaCents: 150},
	}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO spots")
	for _, s := range spots {
		prep.ExpectExec().
			WithArgs(s.CodigoSpot, s.RvParkID, s.Estado, s.Zona, s.TarifaDiaCents, s.TarifaSemanaCents, s.TarifaMesCents, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err = repo.CreateBatch(ctx, spots)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpotRepository_List_Filters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewSpotRepository(db)
	ctx := context.Background()

	t.Run("by park and estado", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id_spot", "codigo_spot", "id_rv_park", "estado", "zona", "tarifa_dia", "tarifa_semana", "tarifa_mes", "created_on", "updated_on"}).
			AddRow(1, "A01", 5, "Disponible", "Norte", 150, 800, 2500, "2025-01-01", "2025-01-01")

		mock.ExpectQuery("SELECT (.+) FROM spots WHERE 1=1 AND id_rv_park = \\$1 AND estado = \\$2").
			WithArgs(int32(5), "Disponible").
			WillReturnRows(rows)

		spots, err := repo.List(ctx, 5, "Disponible")
		assert.NoError(t, err)
		assert.Len(t, spots, 1)
		assert.Equal(t, "A01", spots[0].CodigoSpot)
	})

	t.Run("unfiltered", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id_spot", "codigo_spot", "id_rv_park", "estado", "zona", "tarifa_dia", "tarifa_semana", "tarifa_mes", "created_on", "updated_on"})

		mock.ExpectQuery("SELECT (.+) FROM spots WHERE 1=1 ORDER BY codigo_spot").
			WillReturnRows(rows)

		spots, err := repo.List(ctx, 0, "")
		assert.NoError(t, err)
		assert.Empty(t, spots)
	})
}

func TestSpotRepository_UpdateEstado(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewSpotRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE spots SET estado=\\$1").
		WithArgs(domain.SpotEstadoProceso, sqlmock.AnyArg(), int32(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.UpdateEstado(ctx, 7, domain.SpotEstadoProceso)
	assert.NoError(t, err)
}
