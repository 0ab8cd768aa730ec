package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/repository"
)

type eventoRepository struct {
	db *sql.DB
}

func NewEventoRepository(db *sql.DB) repository.EventoRepository {
	return &eventoRepository{db: db}
}

const eventoColumns = `id_evento, id_rv_park, nombre, descripcion, fecha_inicio, fecha_fin, tipo_evento, created_on, updated_on`

func scanEvento(row interface{ Scan(...any) error }) (*domain.Evento, error) {
	e := &domain.Evento{}
	err := row.Scan(&e.ID, &e.RvParkID, &e.Nombre, &e.Descripcion, &e.FechaInicio, &e.FechaFin, &e.TipoEvento, &e.CreatedOn, &e.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventoRepository) Create(ctx context.Context, e *domain.Evento) error {
	query := `INSERT INTO eventos (id_rv_park, nombre, descripcion, fecha_inicio, fecha_fin, tipo_evento, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id_evento`
	return r.db.QueryRowContext(ctx, query, e.RvParkID, e.Nombre, e.Descripcion, e.FechaInicio, e.FechaFin, e.TipoEvento, time.Now(), time.Now()).Scan(&e.ID)
}

func (r *eventoRepository) GetByID(ctx context.Context, id int32) (*domain.Evento, error) {
	query := `SELECT ` + eventoColumns + ` FROM eventos WHERE id_evento = $1`
	return scanEvento(r.db.QueryRowContext(ctx, query, id))
}

func (r *eventoRepository) List(ctx context.Context, filter domain.EventoFilter) ([]domain.Evento, error) {
	query := `SELECT ` + eventoColumns + ` FROM eventos WHERE 1=1`
	args := []interface{}{}
	argIdx := 1
	if filter.RvParkID != 0 {
		query += fmt.Sprintf(" AND id_rv_park = $%d", argIdx)
		args = append(args, filter.RvParkID)
		argIdx++
	}
	if filter.TipoEvento != "" {
		query += fmt.Sprintf(" AND tipo_evento = $%d", argIdx)
		args = append(args, filter.TipoEvento)
		argIdx++
	}
	if filter.FechaInicio != "" {
		query += fmt.Sprintf(" AND fecha_fin >= $%d", argIdx)
		args = append(args, filter.FechaInicio)
		argIdx++
	}
	if filter.FechaFin != "" {
		query += fmt.Sprintf(" AND fecha_inicio <= $%d", argIdx)
		args = append(args, filter.FechaFin)
	}
	query += " ORDER BY fecha_inicio DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var eventos []domain.Evento
	for rows.Next() {
		e, err := scanEvento(rows)
		if err != nil {
			return nil, err
		}
		eventos = append(eventos, *e)
	}
	return eventos, rows.Err()
}

func (r *eventoRepository) Update(ctx context.Context, e *domain.Evento) error {
	query := `UPDATE eventos SET id_rv_park=$1, nombre=$2, descripcion=$3, fecha_inicio=$4, fecha_fin=$5, tipo_evento=$6, updated_on=$7 WHERE id_evento=$8`
	_, err := r.db.ExecContext(ctx, query, e.RvParkID, e.Nombre, e.Descripcion, e.FechaInicio, e.FechaFin, e.TipoEvento, time.Now(), e.ID)
	return err
}

func (r *eventoRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM eventos WHERE id_evento = $1`, id)
	return err
}
