package postgres

import (
	"context"
	"database/sql"
	"time"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/repository"
)

type rvParkRepository struct {
	db *sql.DB
}

func NewRvParkRepository(db *sql.DB) repository.RvParkRepository {
	return &rvParkRepository{db: db}
}

const rvParkColumns = `id_rv_park, nombre, direccion, telefono, email, created_on, updated_on`

func scanRvPark(row interface{ Scan(...any) error }) (*domain.RvPark, error) {
	p := &domain.RvPark{}
	err := row.Scan(&p.ID, &p.Nombre, &p.Direccion, &p.Telefono, &p.Email, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *rvParkRepository) Create(ctx context.Context, p *domain.RvPark) error {
	query := `INSERT INTO rv_parks (nombre, direccion, telefono, email, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id_rv_park`
	return r.db.QueryRowContext(ctx, query, p.Nombre, p.Direccion, p.Telefono, p.Email, time.Now(), time.Now()).Scan(&p.ID)
}

func (r *rvParkRepository) GetByID(ctx context.Context, id int32) (*domain.RvPark, error) {
	query := `SELECT ` + rvParkColumns + ` FROM rv_parks WHERE id_rv_park = $1`
	return scanRvPark(r.db.QueryRowContext(ctx, query, id))
}

func (r *rvParkRepository) List(ctx context.Context) ([]domain.RvPark, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+rvParkColumns+` FROM rv_parks ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parks []domain.RvPark
	for rows.Next() {
		p, err := scanRvPark(rows)
		if err != nil {
			return nil, err
		}
		parks = append(parks, *p)
	}
	return parks, rows.Err()
}

func (r *rvParkRepository) Update(ctx context.Context, p *domain.RvPark) error {
	query := `UPDATE rv_parks SET nombre=$1, direccion=$2, telefono=$3, email=$4, updated_on=$5 WHERE id_rv_park=$6`
	_, err := r.db.ExecContext(ctx, query, p.Nombre, p.Direccion, p.Telefono, p.Email, time.Now(), p.ID)
	return err
}

func (r *rvParkRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rv_parks WHERE id_rv_park = $1`, id)
	return err
}
