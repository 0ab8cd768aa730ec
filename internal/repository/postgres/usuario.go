package postgres

import (
	"context"
	"database/sql"
	"time"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/repository"
)

type usuarioRepository struct {
	db *sql.DB
}

func NewUsuarioRepository(db *sql.DB) repository.UsuarioRepository {
	return &usuarioRepository{db: db}
}

const usuarioColumns = `id_usuario, nombre_usuario, nombre, email, password_hash, rol, created_on, updated_on`

func scanUsuario(row interface{ Scan(...any) error }) (*domain.Usuario, error) {
	u := &domain.Usuario{}
	err := row.Scan(&u.ID, &u.NombreUsuario, &u.Nombre, &u.Email, &u.PasswordHash, &u.Rol, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *usuarioRepository) Create(ctx context.Context, u *domain.Usuario) error {
	query := `INSERT INTO usuarios (nombre_usuario, nombre, email, password_hash, rol, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id_usuario`
	return r.db.QueryRowContext(ctx, query, u.NombreUsuario, u.Nombre, u.Email, u.PasswordHash, u.Rol, time.Now(), time.Now()).Scan(&u.ID)
}

func (r *usuarioRepository) GetByID(ctx context.Context, id int32) (*domain.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id_usuario = $1`
	return scanUsuario(r.db.QueryRowContext(ctx, query, id))
}

func (r *usuarioRepository) GetByNombreUsuario(ctx context.Context, nombreUsuario string) (*domain.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE nombre_usuario = $1`
	return scanUsuario(r.db.QueryRowContext(ctx, query, nombreUsuario))
}
