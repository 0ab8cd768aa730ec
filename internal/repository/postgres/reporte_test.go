package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestReporteRepository_Ocupacion(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReporteRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"total", "disponibles", "pagados", "proceso", "caliche"}).
		AddRow(10, 4, 3, 2, 1)

	mock.ExpectQuery("SELECT (.+) FROM spots WHERE id_rv_park = \\$1").
		WithArgs(int32(5)).
		WillReturnRows(rows)

	rep, err := repo.Ocupacion(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, int32(10), rep.Total)
	assert.Equal(t, int32(4), rep.Disponibles)
	assert.InDelta(t, 60.0, rep.Ocupacion, 0.001)
}

func TestReporteRepository_PagosPendientes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReporteRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id_renta", "nombre", "codigo_spot", "monto_total", "pagado"}).
		AddRow(3, "Viajero Pérez", "A07", 1000, 400)

	mock.ExpectQuery("SELECT (.+) FROM rentas r").
		WillReturnRows(rows)

	pendientes, err := repo.PagosPendientes(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, pendientes, 1)
	assert.Equal(t, int64(600), pendientes[0].SaldoCents)
}
