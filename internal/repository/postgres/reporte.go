package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/repository"
)

type reporteRepository struct {
	db *sql.DB
}

func NewReporteRepository(db *sql.DB) repository.ReporteRepository {
	return &reporteRepository{db: db}
}

func (r *reporteRepository) Ocupacion(ctx context.Context, rvParkID int32) (*domain.ReporteOcupacion, error) {
	query := `SELECT
	            count(*),
	            count(*) FILTER (WHERE estado = 'Disponible'),
	            count(*) FILTER (WHERE estado = 'Pagado'),
	            count(*) FILTER (WHERE estado = 'Proceso'),
	            count(*) FILTER (WHERE estado = 'Caliche')
	          FROM spots WHERE id_rv_park = $1`

	rep := &domain.ReporteOcupacion{RvParkID: rvParkID}
	err := r.db.QueryRowContext(ctx, query, rvParkID).Scan(&rep.Total, &rep.Disponibles, &rep.Pagados, &rep.EnProceso, &rep.Caliche)
	if err != nil {
		return nil, err
	}
	if rep.Total > 0 {
		rep.Ocupacion = float64(rep.Total-rep.Disponibles) / float64(rep.Total) * 100
	}
	return rep, nil
}

func (r *reporteRepository) Ingresos(ctx context.Context, rvParkID int32, fechaInicio, fechaFin string) ([]domain.ReporteIngresos, error) {
	query := `SELECT p.periodo, COALESCE(SUM(p.monto), 0), count(*)
	          FROM pagos p
	          JOIN rentas r ON r.id_renta = p.id_renta
	          JOIN spots s ON s.id_spot = r.id_spot
	          WHERE 1=1`
	args := []interface{}{}
	argIdx := 1
	if rvParkID != 0 {
		query += fmt.Sprintf(" AND s.id_rv_park = $%d", argIdx)
		args = append(args, rvParkID)
		argIdx++
	}
	if fechaInicio != "" {
		query += fmt.Sprintf(" AND p.fecha_pago >= $%d", argIdx)
		args = append(args, fechaInicio)
		argIdx++
	}
	if fechaFin != "" {
		query += fmt.Sprintf(" AND p.fecha_pago <= $%d", argIdx)
		args = append(args, fechaFin)
	}
	query += " GROUP BY p.periodo ORDER BY p.periodo"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingresos []domain.ReporteIngresos
	for rows.Next() {
		var ing domain.ReporteIngresos
		if err := rows.Scan(&ing.Periodo, &ing.TotalCents, &ing.NumPagos); err != nil {
			return nil, err
		}
		ingresos = append(ingresos, ing)
	}
	return ingresos, rows.Err()
}

func (r *reporteRepository) PagosPendientes(ctx context.Context, rvParkID int32) ([]domain.PagoPendiente, error) {
	query := `SELECT r.id_renta, c.nombre, s.codigo_spot, r.monto_total, COALESCE(SUM(p.monto), 0)
	          FROM rentas r
	          JOIN clientes c ON c.id_persona = r.id_cliente
	          JOIN spots s ON s.id_spot = r.id_spot
	          LEFT JOIN pagos p ON p.id_renta = r.id_renta
	          WHERE r.estatus_pago = 'Pendiente'`
	args := []interface{}{}
	if rvParkID != 0 {
		query += " AND s.id_rv_park = $1"
		args = append(args, rvParkID)
	}
	query += ` GROUP BY r.id_renta, c.nombre, s.codigo_spot, r.monto_total
	           HAVING r.monto_total > COALESCE(SUM(p.monto), 0)
	           ORDER BY r.id_renta`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pendientes []domain.PagoPendiente
	for rows.Next() {
		var pp domain.PagoPendiente
		if err := rows.Scan(&pp.RentaID, &pp.ClienteNombre, &pp.CodigoSpot, &pp.MontoTotalCents, &pp.PagadoCents); err != nil {
			return nil, err
		}
		pp.SaldoCents = pp.MontoTotalCents - pp.PagadoCents
		pendientes = append(pendientes, pp)
	}
	return pendientes, rows.Err()
}
