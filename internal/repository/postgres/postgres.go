package postgres

import (
	"database/sql"

	"rvpark-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ClienteRepository
	repository.RvParkRepository
	repository.SpotRepository
	repository.RentaRepository
	repository.PagoRepository
	repository.EventoRepository
	repository.UsuarioRepository
	repository.ReporteRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		ClienteRepository: NewClienteRepository(db),
		RvParkRepository:  NewRvParkRepository(db),
		SpotRepository:    NewSpotRepository(db),
		RentaRepository:   NewRentaRepository(db),
		PagoRepository:    NewPagoRepository(db),
		EventoRepository:  NewEventoRepository(db),
		UsuarioRepository: NewUsuarioRepository(db),
		ReporteRepository: NewReporteRepository(db),
	}
}
