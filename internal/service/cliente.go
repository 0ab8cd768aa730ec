package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/repository"
	"rvpark-backend/internal/validate"
)

type clienteService struct {
	clienteRepo repository.ClienteRepository
}

func NewClienteService(clienteRepo repository.ClienteRepository) ClienteService {
	return &clienteService{clienteRepo: clienteRepo}
}

// Create registers a cliente with its login credentials. The password is
// stored as a bcrypt hash and the account gets the Cliente rol.
func (s *clienteService) Create(ctx context.Context, c *domain.Cliente, password string) error {
	errs := validate.Cliente(validate.ClienteDraft{
		Nombre:        c.Nombre,
		Telefono:      c.Telefono,
		Email:         c.Email,
		NombreUsuario: c.NombreUsuario,
		Password:      password,
	})
	if err := validationError(errs); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.PasswordHash = string(hash)
	c.Rol = domain.RolCliente

	return s.clienteRepo.Create(ctx, c)
}

func (s *clienteService) GetByID(ctx context.Context, id int32) (*domain.Cliente, error) {
	return s.clienteRepo.GetByID(ctx, id)
}

func (s *clienteService) List(ctx context.Context) ([]domain.Cliente, error) {
	return s.clienteRepo.List(ctx)
}

// Update edits the persona fields only; credentials never change here.
func (s *clienteService) Update(ctx context.Context, c *domain.Cliente) error {
	errs := validate.Cliente(validate.ClienteDraft{
		Nombre:   c.Nombre,
		Telefono: c.Telefono,
		Email:    c.Email,
		Editing:  true,
	})
	if err := validationError(errs); err != nil {
		return err
	}
	return s.clienteRepo.Update(ctx, c)
}

func (s *clienteService) Delete(ctx context.Context, id int32) error {
	return s.clienteRepo.Delete(ctx, id)
}
