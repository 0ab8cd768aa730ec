package service

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/repository"
	"rvpark-backend/internal/security"
)

type authService struct {
	usuarioRepo repository.UsuarioRepository
	clienteRepo repository.ClienteRepository
	tokens      security.TokenManager
}

func NewAuthService(usuarioRepo repository.UsuarioRepository, clienteRepo repository.ClienteRepository, tokens security.TokenManager) AuthService {
	return &authService{
		usuarioRepo: usuarioRepo,
		clienteRepo: clienteRepo,
		tokens:      tokens,
	}
}

// Login resolves the credentials against operator accounts first and cliente
// accounts second, so a cliente can sign in with the same endpoint.
func (s *authService) Login(ctx context.Context, nombreUsuario, password string) (string, *domain.Usuario, error) {
	usuario, err := s.usuarioRepo.GetByNombreUsuario(ctx, nombreUsuario)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return "", nil, err
		}
		cliente, cErr := s.clienteRepo.GetByNombreUsuario(ctx, nombreUsuario)
		if cErr != nil {
			if errors.Is(cErr, sql.ErrNoRows) {
				return "", nil, ErrCredencialesInvalidas
			}
			return "", nil, cErr
		}
		usuario = &domain.Usuario{
			ID:            cliente.ID,
			NombreUsuario: cliente.NombreUsuario,
			Nombre:        cliente.Nombre,
			Email:         cliente.Email,
			PasswordHash:  cliente.PasswordHash,
			Rol:           domain.RolCliente,
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrCredencialesInvalidas
	}

	token, err := s.tokens.GenerateAccessToken(usuario.ID, usuario.NombreUsuario, string(usuario.Rol))
	if err != nil {
		return "", nil, err
	}
	return token, usuario, nil
}
