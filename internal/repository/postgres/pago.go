package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/repository"
)

type pagoRepository struct {
	db *sql.DB
}

func NewPagoRepository(db *sql.DB) repository.PagoRepository {
	return &pagoRepository{db: db}
}

const pagoColumns = `id_pago, id_renta, fecha_pago, monto, metodo_pago, referencia, folio, periodo, created_on, updated_on`

func scanPago(row interface{ Scan(...any) error }) (*domain.Pago, error) {
	p := &domain.Pago{}
	err := row.Scan(&p.ID, &p.RentaID, &p.FechaPago, &p.MontoCents, &p.MetodoPago, &p.Referencia, &p.Folio, &p.Periodo, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *pagoRepository) Create(ctx context.Context, p *domain.Pago) error {
	query := `INSERT INTO pagos (id_renta, fecha_pago, monto, metodo_pago, referencia, folio, periodo, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id_pago`
	return r.db.QueryRowContext(ctx, query, p.RentaID, p.FechaPago, p.MontoCents, p.MetodoPago, p.Referencia, p.Folio, p.Periodo, time.Now(), time.Now()).Scan(&p.ID)
}

func (r *pagoRepository) GetByID(ctx context.Context, id int32) (*domain.Pago, error) {
	query := `SELECT ` + pagoColumns + ` FROM pagos WHERE id_pago = $1`
	return scanPago(r.db.QueryRowContext(ctx, query, id))
}

func (r *pagoRepository) List(ctx context.Context, rentaID int32, periodo string) ([]domain.Pago, error) {
	query := `SELECT ` + pagoColumns + ` FROM pagos WHERE 1=1`
	args := []interface{}{}
	argIdx := 1
	if rentaID != 0 {
		query += fmt.Sprintf(" AND id_renta = $%d", argIdx)
		args = append(args, rentaID)
		argIdx++
	}
	if periodo != "" {
		query += fmt.Sprintf(" AND periodo = $%d", argIdx)
		args = append(args, periodo)
	}
	query += " ORDER BY fecha_pago DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pagos []domain.Pago
	for rows.Next() {
		p, err := scanPago(rows)
		if err != nil {
			return nil, err
		}
		pagos = append(pagos, *p)
	}
	return pagos, rows.Err()
}

func (r *pagoRepository) SumByRenta(ctx context.Context, rentaID int32) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(monto), 0) FROM pagos WHERE id_renta = $1`, rentaID).Scan(&total)
	return total, err
}

func (r *pagoRepository) CountByRenta(ctx context.Context, rentaID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM pagos WHERE id_renta = $1`, rentaID).Scan(&count)
	return count, err
}

func (r *pagoRepository) Update(ctx context.Context, p *domain.Pago) error {
	query := `UPDATE pagos SET fecha_pago=$1, monto=$2, metodo_pago=$3, referencia=$4, periodo=$5, updated_on=$6 WHERE id_pago=$7`
	_, err := r.db.ExecContext(ctx, query, p.FechaPago, p.MontoCents, p.MetodoPago, p.Referencia, p.Periodo, time.Now(), p.ID)
	return err
}

func (r *pagoRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pagos WHERE id_pago = $1`, id)
	return err
}
