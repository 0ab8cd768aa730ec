package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/security"
	"rvpark-backend/internal/service"
)

const testSecret = "test-secret-0123456789-0123456789-01"

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret, 60)

	t.Run("operator login", func(t *testing.T) {
		usuarioRepo := new(MockUsuarioRepo)
		clienteRepo := new(MockClienteRepo)
		svc := service.NewAuthService(usuarioRepo, clienteRepo, tokens)

		usuarioRepo.On("GetByNombreUsuario", ctx, "admin").Return(&domain.Usuario{
			ID:            1,
			NombreUsuario: "admin",
			PasswordHash:  hashOf(t, "secreto1"),
			Rol:           domain.RolAdministrador,
		}, nil)

		token, usuario, err := svc.Login(ctx, "admin", "secreto1")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, domain.RolAdministrador, usuario.Rol)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), claims.UserID)
		assert.Equal(t, string(domain.RolAdministrador), claims.Rol)
	})

	t.Run("cliente fallback login", func(t *testing.T) {
		usuarioRepo := new(MockUsuarioRepo)
		clienteRepo := new(MockClienteRepo)
		svc := service.NewAuthService(usuarioRepo, clienteRepo, tokens)

		usuarioRepo.On("GetByNombreUsuario", ctx, "viajero").Return(nil, sql.ErrNoRows)
		clienteRepo.On("GetByNombreUsuario", ctx, "viajero").Return(&domain.Cliente{
			ID:            8,
			Nombre:        "Viajero Pérez",
			NombreUsuario: "viajero",
			PasswordHash:  hashOf(t, "ruta66pass"),
		}, nil)

		_, usuario, err := svc.Login(ctx, "viajero", "ruta66pass")

		assert.NoError(t, err)
		assert.Equal(t, domain.RolCliente, usuario.Rol)
		assert.Equal(t, int32(8), usuario.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		usuarioRepo := new(MockUsuarioRepo)
		clienteRepo := new(MockClienteRepo)
		svc := service.NewAuthService(usuarioRepo, clienteRepo, tokens)

		usuarioRepo.On("GetByNombreUsuario", ctx, "admin").Return(&domain.Usuario{
			ID:           1,
			PasswordHash: hashOf(t, "secreto1"),
		}, nil)

		_, _, err := svc.Login(ctx, "admin", "incorrecta")
		assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
	})

	t.Run("unknown user", func(t *testing.T) {
		usuarioRepo := new(MockUsuarioRepo)
		clienteRepo := new(MockClienteRepo)
		svc := service.NewAuthService(usuarioRepo, clienteRepo, tokens)

		usuarioRepo.On("GetByNombreUsuario", ctx, "nadie").Return(nil, sql.ErrNoRows)
		clienteRepo.On("GetByNombreUsuario", ctx, "nadie").Return(nil, sql.ErrNoRows)

		_, _, err := svc.Login(ctx, "nadie", "loquesea")
		assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
	})
}
