package postgres

import (
	"context"
	"database/sql"
	"time"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/repository"
)

type clienteRepository struct {
	db *sql.DB
}

func NewClienteRepository(db *sql.DB) repository.ClienteRepository {
	return &clienteRepository{db: db}
}

const clienteColumns = `id_persona, nombre, telefono, email, tipo_vehiculo, nombre_usuario, password_hash, rol, created_on, updated_on`

func scanCliente(row interface{ Scan(...any) error }) (*domain.Cliente, error) {
	c := &domain.Cliente{}
	err := row.Scan(&c.ID, &c.Nombre, &c.Telefono, &c.Email, &c.TipoVehiculo, &c.NombreUsuario, &c.PasswordHash, &c.Rol, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clienteRepository) Create(ctx context.Context, c *domain.Cliente) error {
	query := `INSERT INTO clientes (nombre, telefono, email, tipo_vehiculo, nombre_usuario, password_hash, rol, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id_persona`
	return r.db.QueryRowContext(ctx, query, c.Nombre, c.Telefono, c.Email, c.TipoVehiculo, c.NombreUsuario, c.PasswordHash, c.Rol, time.Now(), time.Now()).Scan(&c.ID)
}

func (r *clienteRepository) GetByID(ctx context.Context, id int32) (*domain.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE id_persona = $1`
	return scanCliente(r.db.QueryRowContext(ctx, query, id))
}

func (r *clienteRepository) GetByNombreUsuario(ctx context.Context, nombreUsuario string) (*domain.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE nombre_usuario = $1`
	return scanCliente(r.db.QueryRowContext(ctx, query, nombreUsuario))
}

func (r *clienteRepository) List(ctx context.Context) ([]domain.Cliente, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clienteColumns+` FROM clientes ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clientes []domain.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, err
		}
		clientes = append(clientes, *c)
	}
	return clientes, rows.Err()
}

// Update only touches the persona fields. Credentials are written once at
// creation and never changed through this repository.
func (r *clienteRepository) Update(ctx context.Context, c *domain.Cliente) error {
	query := `UPDATE clientes SET nombre=$1, telefono=$2, email=$3, tipo_vehiculo=$4, updated_on=$5 WHERE id_persona=$6`
	_, err := r.db.ExecContext(ctx, query, c.Nombre, c.Telefono, c.Email, c.TipoVehiculo, time.Now(), c.ID)
	return err
}

func (r *clienteRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM clientes WHERE id_persona = $1`, id)
	return err
}
