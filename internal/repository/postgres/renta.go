package postgres

import (
	"context"
	"database/sql"
	"time"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/repository"
)

type rentaRepository struct {
	db *sql.DB
}

func NewRentaRepository(db *sql.DB) repository.RentaRepository {
	return &rentaRepository{db: db}
}

const rentaColumns = `id_renta, id_cliente, id_spot, fecha_inicio, fecha_fin, tipo_renta, tarifa, duracion, monto_total, estatus_pago, motivo_cancelacion, metodo_pago, observaciones, created_on, updated_on`

func scanRenta(row interface{ Scan(...any) error }) (*domain.Renta, error) {
	rt := &domain.Renta{}
	err := row.Scan(&rt.ID, &rt.ClienteID, &rt.SpotID, &rt.FechaInicio, &rt.FechaFin, &rt.TipoRenta, &rt.TarifaCents, &rt.Duracion, &rt.MontoTotalCents, &rt.EstatusPago, &rt.MotivoCancelacion, &rt.MetodoPago, &rt.Observaciones, &rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentaRepository) Create(ctx context.Context, rt *domain.Renta) error {
	query := `INSERT INTO rentas (id_cliente, id_spot, fecha_inicio, fecha_fin, tipo_renta, tarifa, duracion, monto_total, estatus_pago, metodo_pago, observaciones, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id_renta`
	return r.db.QueryRowContext(ctx, query, rt.ClienteID, rt.SpotID, rt.FechaInicio, rt.FechaFin, rt.TipoRenta, rt.TarifaCents, rt.Duracion, rt.MontoTotalCents, rt.EstatusPago, rt.MetodoPago, rt.Observaciones, time.Now(), time.Now()).Scan(&rt.ID)
}

func (r *rentaRepository) GetByID(ctx context.Context, id int32) (*domain.Renta, error) {
	query := `SELECT ` + rentaColumns + ` FROM rentas WHERE id_renta = $1`
	return scanRenta(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentaRepository) List(ctx context.Context) ([]domain.Renta, error) {
	query := `SELECT ` + rentaColumns + ` FROM rentas ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentas []domain.Renta
	for rows.Next() {
		rt, err := scanRenta(rows)
		if err != nil {
			return nil, err
		}
		rentas = append(rentas, *rt)
	}
	return rentas, rows.Err()
}

func (r *rentaRepository) ListActivas(ctx context.Context, rvParkID int32) ([]domain.RentaActiva, error) {
	query := `SELECT r.id_renta, r.id_cliente, r.id_spot, r.fecha_inicio, r.fecha_fin, r.tipo_renta, r.tarifa, r.duracion, r.monto_total, r.estatus_pago, r.motivo_cancelacion, r.metodo_pago, r.observaciones, r.created_on, r.updated_on, c.nombre, s.codigo_spot
	          FROM rentas r
	          JOIN clientes c ON c.id_persona = r.id_cliente
	          JOIN spots s ON s.id_spot = r.id_spot
	          WHERE r.estatus_pago <> 'Cancelado' AND (r.fecha_fin IS NULL OR r.fecha_fin >= $1)`
	args := []interface{}{time.Now().Format("2006-01-02")}
	if rvParkID != 0 {
		query += " AND s.id_rv_park = $2"
		args = append(args, rvParkID)
	}
	query += " ORDER BY r.fecha_inicio DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activas []domain.RentaActiva
	for rows.Next() {
		var ra domain.RentaActiva
		if err := rows.Scan(&ra.ID, &ra.ClienteID, &ra.SpotID, &ra.FechaInicio, &ra.FechaFin, &ra.TipoRenta, &ra.TarifaCents, &ra.Duracion, &ra.MontoTotalCents, &ra.EstatusPago, &ra.MotivoCancelacion, &ra.MetodoPago, &ra.Observaciones, &ra.CreatedOn, &ra.UpdatedOn, &ra.ClienteNombre, &ra.CodigoSpot); err != nil {
			return nil, err
		}
		activas = append(activas, ra)
	}
	return activas, rows.Err()
}

func (r *rentaRepository) Update(ctx context.Context, rt *domain.Renta) error {
	query := `UPDATE rentas SET id_cliente=$1, id_spot=$2, fecha_inicio=$3, fecha_fin=$4, tipo_renta=$5, tarifa=$6, duracion=$7, monto_total=$8, estatus_pago=$9, motivo_cancelacion=$10, metodo_pago=$11, observaciones=$12, updated_on=$13 WHERE id_renta=$14`
	_, err := r.db.ExecContext(ctx, query, rt.ClienteID, rt.SpotID, rt.FechaInicio, rt.FechaFin, rt.TipoRenta, rt.TarifaCents, rt.Duracion, rt.MontoTotalCents, rt.EstatusPago, rt.MotivoCancelacion, rt.MetodoPago, rt.Observaciones, time.Now(), rt.ID)
	return err
}

func (r *rentaRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rentas WHERE id_renta = $1`, id)
	return err
}

// ListVencidas returns expired rentas that still hold their spot: the spot
// has not been released yet and no newer renta has taken it over. Finalizing
// releases the spot, so a renta is only ever returned once.
func (r *rentaRepository) ListVencidas(ctx context.Context, cutoff string) ([]domain.Renta, error) {
	query := `SELECT r.id_renta, r.id_cliente, r.id_spot, r.fecha_inicio, r.fecha_fin, r.tipo_renta, r.tarifa, r.duracion, r.monto_total, r.estatus_pago, r.motivo_cancelacion, r.metodo_pago, r.observaciones, r.created_on, r.updated_on
	          FROM rentas r
	          JOIN spots s ON s.id_spot = r.id_spot
	          WHERE r.fecha_fin IS NOT NULL AND r.fecha_fin < $1
	            AND r.estatus_pago <> 'Cancelado'
	            AND s.estado <> 'Disponible'
	            AND NOT EXISTS (
	                SELECT 1 FROM rentas r2
	                WHERE r2.id_spot = r.id_spot
	                  AND r2.id_renta <> r.id_renta
	                  AND r2.estatus_pago <> 'Cancelado'
	                  AND r2.fecha_inicio > r.fecha_inicio)`
	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentas []domain.Renta
	for rows.Next() {
		rt, err := scanRenta(rows)
		if err != nil {
			return nil, err
		}
		rentas = append(rentas, *rt)
	}
	return rentas, rows.Err()
}
