package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"rvpark-backend/internal/domain"
)

func TestRentaRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentaRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		duracion := int32(2)
		rt := &domain.Renta{
			ClienteID:       1,
			SpotID:          7,
			FechaInicio:     "2025-03-01",
			TipoRenta:       domain.TipoRentaWeek,
			TarifaCents:     500,
			Duracion:        &duracion,
			MontoTotalCents: 1000,
			EstatusPago:     domain.EstatusPagoPendiente,
			MetodoPago:      domain.MetodoPagoEfectivo,
		}

		mock.ExpectQuery("INSERT INTO rentas").
			WithArgs(rt.ClienteID, rt.SpotID, rt.FechaInicio, nil, rt.TipoRenta, rt.TarifaCents, &duracion, rt.MontoTotalCents, rt.EstatusPago, rt.MetodoPago, rt.Observaciones, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id_renta"}).AddRow(1))

		err := repo.Create(ctx, rt)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), rt.ID)
	})
}

func TestRentaRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentaRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id_renta", "id_cliente", "id_spot", "fecha_inicio", "fecha_fin", "tipo_renta", "tarifa", "duracion", "monto_total", "estatus_pago", "motivo_cancelacion", "metodo_pago", "observaciones", "created_on", "updated_on"}).
			AddRow(3, 1, 7, "2025-03-01", nil, "month", 1200, 1, 1200, "Pendiente", "", "Efectivo", "", "2025-03-01", "2025-03-01")

		mock.ExpectQuery("SELECT (.+) FROM rentas WHERE id_renta = \\$1").
			WithArgs(int32(3)).
			WillReturnRows(rows)

		rt, err := repo.GetByID(ctx, 3)
		assert.NoError(t, err)
		assert.NotNil(t, rt)
		assert.Equal(t, int32(3), rt.ID)
		assert.Nil(t, rt.FechaFin)
		assert.Equal(t, domain.TipoRentaMonth, rt.TipoRenta)
	})
}

func TestRentaRepository_ListVencidas(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentaRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id_renta", "id_cliente", "id_spot", "fecha_inicio", "fecha_fin", "tipo_renta", "tarifa", "duracion", "monto_total", "estatus_pago", "motivo_cancelacion", "metodo_pago", "observaciones", "created_on", "updated_on"}).
		AddRow(4, 2, 9, "2025-01-01", "2025-02-01", "month", 1200, 1, 1200, "Pagado", "", "Tarjeta", "", "2025-01-01", "2025-01-01")

	// The selection is self-limiting: released spots and spots held by a
	// newer renta are filtered out in SQL.
	mock.ExpectQuery(`SELECT (.+) FROM rentas r\s+JOIN spots s ON s\.id_spot = r\.id_spot\s+WHERE r\.fecha_fin IS NOT NULL AND r\.fecha_fin < \$1\s+AND r\.estatus_pago <> 'Cancelado'\s+AND s\.estado <> 'Disponible'\s+AND NOT EXISTS`).
		WithArgs("2025-03-01").
		WillReturnRows(rows)

	vencidas, err := repo.ListVencidas(ctx, "2025-03-01")
	assert.NoError(t, err)
	assert.Len(t, vencidas, 1)
	assert.Equal(t, int32(4), vencidas[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
