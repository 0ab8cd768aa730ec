package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/repository"
)

type spotRepository struct {
	db *sql.DB
}

func NewSpotRepository(db *sql.DB) repository.SpotRepository {
	return &spotRepository{db: db}
}

const spotColumns = `id_spot, codigo_spot, id_rv_park, estado, zona, tarifa_dia, tarifa_semana, tarifa_mes, created_on, updated_on`

func scanSpot(row interface{ Scan(...any) error }) (*domain.Spot, error) {
	s := &domain.Spot{}
	err := row.Scan(&s.ID, &s.CodigoSpot, &s.RvParkID, &s.Estado, &s.Zona, &s.TarifaDiaCents, &s.TarifaSemanaCents, &s.TarifaMesCents, &s.CreatedOn, &s.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *spotRepository) Create(ctx context.Context, s *domain.Spot) error {
	query := `INSERT INTO spots (codigo_spot, id_rv_park, estado, zona, tarifa_dia, tarifa_semana, tarifa_mes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id_spot`
	return r.db.QueryRowContext(ctx, query, s.CodigoSpot, s.RvParkID, s.Estado, s.Zona, s.TarifaDiaCents, s.TarifaSemanaCents, s.TarifaMesCents, time.Now(), time.Now()).Scan(&s.ID)
}

func (r *spotRepository) CreateBatch(ctx context.Context, spots []domain.Spot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO spots (codigo_spot, id_rv_park, estado, zona, tarifa_dia, tarifa_semana, tarifa_mes, created_on, updated_on)
	                                     VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, s := range spots {
		if _, err := stmt.ExecContext(ctx, s.CodigoSpot, s.RvParkID, s.Estado, s.Zona, s.TarifaDiaCents, s.TarifaSemanaCents, s.TarifaMesCents, now, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *spotRepository) GetByID(ctx context.Context, id int32) (*domain.Spot, error) {
	query := `SELECT ` + spotColumns + ` FROM spots WHERE id_spot = $1`
	return scanSpot(r.db.QueryRowContext(ctx, query, id))
}

func (r *spotRepository) List(ctx context.Context, rvParkID int32, estado string) ([]domain.Spot, error) {
	query := `SELECT ` + spotColumns + ` FROM spots WHERE 1=1`
	args := []interface{}{}
	argIdx := 1
	if rvParkID != 0 {
		query += fmt.Sprintf(" AND id_rv_park = $%d", argIdx)
		args = append(args, rvParkID)
		argIdx++
	}
	if estado != "" {
		query += fmt.Sprintf(" AND estado = $%d", argIdx)
		args = append(args, estado)
	}
	query += " ORDER BY codigo_spot"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var spots []domain.Spot
	for rows.Next() {
		s, err := scanSpot(rows)
		if err != nil {
			return nil, err
		}
		spots = append(spots, *s)
	}
	return spots, rows.Err()
}

func (r *spotRepository) Update(ctx context.Context, s *domain.Spot) error {
	query := `UPDATE spots SET codigo_spot=$1, id_rv_park=$2, estado=$3, zona=$4, tarifa_dia=$5, tarifa_semana=$6, tarifa_mes=$7, updated_on=$8 WHERE id_spot=$9`
	_, err := r.db.ExecContext(ctx, query, s.CodigoSpot, s.RvParkID, s.Estado, s.Zona, s.TarifaDiaCents, s.TarifaSemanaCents, s.TarifaMesCents, time.Now(), s.ID)
	return err
}

func (r *spotRepository) UpdateEstado(ctx context.Context, id int32, estado domain.SpotEstado) error {
	_, err := r.db.ExecContext(ctx, `UPDATE spots SET estado=$1, updated_on=$2 WHERE id_spot=$3`, estado, time.Now(), id)
	return err
}

func (r *spotRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM spots WHERE id_spot = $1`, id)
	return err
}
