package validate

import (
	"testing"

	"rvpark-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	assert.True(t, Email("foo@bar.com"))
	assert.False(t, Email("foo@bar"))
	assert.False(t, Email("foo bar@baz.com"))
	assert.False(t, Email(""))
}

func TestTelefono(t *testing.T) {
	assert.True(t, Telefono("5551234567"))
	assert.True(t, Telefono("(555) 123-4567"))
	assert.True(t, Telefono("555 123 456 789 012")) // 15 digits
	assert.False(t, Telefono("123"))
	assert.False(t, Telefono("5551234567890123")) // 16 digits
	assert.False(t, Telefono("555-ABC-4567"))
}

func TestCliente(t *testing.T) {
	valid := ClienteDraft{
		Nombre:        "Juan Pérez",
		Telefono:      "5551234567",
		Email:         "juan@example.com",
		NombreUsuario: "juanp",
		Password:      "secret1",
	}

	t.Run("Valid draft", func(t *testing.T) {
		assert.True(t, Cliente(valid).Valid())
	})

	t.Run("Short nombre", func(t *testing.T) {
		d := valid
		d.Nombre = "Jo"
		errs := Cliente(d)
		assert.Contains(t, errs, "nombre")
	})

	t.Run("Missing email", func(t *testing.T) {
		d := valid
		d.Email = ""
		assert.Contains(t, Cliente(d), "email")
	})

	t.Run("Bad telefono", func(t *testing.T) {
		d := valid
		d.Telefono = "123"
		assert.Contains(t, Cliente(d), "telefono")
	})

	t.Run("Telefono optional", func(t *testing.T) {
		d := valid
		d.Telefono = ""
		assert.True(t, Cliente(d).Valid())
	})

	t.Run("Short username on create", func(t *testing.T) {
		d := valid
		d.NombreUsuario = "abc"
		assert.Contains(t, Cliente(d), "nombre_usuario")
	})

	t.Run("Short password on create", func(t *testing.T) {
		d := valid
		d.Password = "12345"
		assert.Contains(t, Cliente(d), "password")
	})

	t.Run("Credentials skipped when editing", func(t *testing.T) {
		d := valid
		d.Editing = true
		d.NombreUsuario = ""
		d.Password = ""
		assert.True(t, Cliente(d).Valid())
	})
}

func TestMotivoCancelacion(t *testing.T) {
	t.Run("Nine chars rejected", func(t *testing.T) {
		assert.False(t, MotivoCancelacion("too short").Valid())
	})

	t.Run("Exactly ten chars accepted", func(t *testing.T) {
		assert.True(t, MotivoCancelacion("diez chars").Valid())
	})

	t.Run("Whitespace does not count", func(t *testing.T) {
		assert.False(t, MotivoCancelacion("   corto    ").Valid())
	})
}

func TestRenta(t *testing.T) {
	valid := RentaDraft{
		ClienteID:   1,
		SpotID:      2,
		FechaInicio: "2025-01-01",
		TipoRenta:   domain.TipoRentaWeek,
		TarifaCents: 500,
		Duracion:    2,
	}

	t.Run("Valid periodic draft", func(t *testing.T) {
		assert.True(t, Renta(valid).Valid())
	})

	t.Run("Periodic draft rejects fecha_fin", func(t *testing.T) {
		d := valid
		d.FechaFin = "2025-02-01"
		assert.Contains(t, Renta(d), "fecha_fin")
	})

	t.Run("Periodic draft rejects zero duracion", func(t *testing.T) {
		d := valid
		d.Duracion = 0
		assert.Contains(t, Renta(d), "duracion")
	})

	t.Run("Custom requires fecha_fin after inicio", func(t *testing.T) {
		d := valid
		d.TipoRenta = domain.TipoRentaCustom
		d.Duracion = 0
		d.FechaFin = ""
		assert.Contains(t, Renta(d), "fecha_fin")

		d.FechaFin = "2025-01-01"
		assert.Contains(t, Renta(d), "fecha_fin")

		d.FechaFin = "2025-01-15"
		assert.True(t, Renta(d).Valid())
	})

	t.Run("Unknown tipo rejected", func(t *testing.T) {
		d := valid
		d.TipoRenta = "quincena"
		assert.Contains(t, Renta(d), "tipo_renta")
	})
}

func TestPago(t *testing.T) {
	valid := PagoDraft{
		RentaID:    1,
		FechaPago:  "2025-01-15",
		MontoCents: 500,
		MetodoPago: domain.MetodoPagoEfectivo,
		SaldoCents: 1000,
	}

	t.Run("Valid draft", func(t *testing.T) {
		assert.True(t, Pago(valid).Valid())
	})

	t.Run("Zero monto rejected", func(t *testing.T) {
		d := valid
		d.MontoCents = 0
		assert.Contains(t, Pago(d), "monto")
	})

	t.Run("Monto exceeding saldo rejected", func(t *testing.T) {
		d := valid
		d.MontoCents = 1001
		assert.Contains(t, Pago(d), "monto")
	})

	t.Run("Monto equal to saldo accepted", func(t *testing.T) {
		d := valid
		d.MontoCents = 1000
		assert.True(t, Pago(d).Valid())
	})

	t.Run("Unknown saldo skips balance check", func(t *testing.T) {
		d := valid
		d.MontoCents = 99999
		d.SaldoCents = -1
		assert.True(t, Pago(d).Valid())
	})

	t.Run("Bad metodo rejected", func(t *testing.T) {
		d := valid
		d.MetodoPago = "Cheque"
		assert.Contains(t, Pago(d), "metodo_pago")
	})
}

func TestEvento(t *testing.T) {
	valid := EventoDraft{
		RvParkID:    1,
		Nombre:      "Feria anual",
		FechaInicio: "2025-05-01",
		FechaFin:    "2025-05-03",
	}

	t.Run("Valid draft", func(t *testing.T) {
		assert.True(t, Evento(valid).Valid())
	})

	t.Run("End before start rejected", func(t *testing.T) {
		d := valid
		d.FechaFin = "2025-04-30"
		assert.Contains(t, Evento(d), "fecha_fin")
	})

	t.Run("End equal to start rejected", func(t *testing.T) {
		d := valid
		d.FechaFin = d.FechaInicio
		assert.Contains(t, Evento(d), "fecha_fin")
	})
}

func TestRvPark(t *testing.T) {
	valid := RvParkDraft{Nombre: "Park Norte", Email: "norte@parks.mx", Telefono: "5551234567"}

	t.Run("Valid draft", func(t *testing.T) {
		assert.True(t, RvPark(valid).Valid())
	})

	t.Run("Spot generation bounds", func(t *testing.T) {
		d := valid
		d.GenerarSpots = true
		d.CantidadSpots = 0
		assert.Contains(t, RvPark(d), "cantidad_spots")

		d.CantidadSpots = 501
		assert.Contains(t, RvPark(d), "cantidad_spots")

		d.CantidadSpots = 500
		assert.True(t, RvPark(d).Valid())
	})
}

func TestSpot(t *testing.T) {
	t.Run("Valid draft", func(t *testing.T) {
		d := SpotDraft{CodigoSpot: "A01", RvParkID: 1, Estado: domain.SpotEstadoDisponible}
		assert.True(t, Spot(d).Valid())
	})

	t.Run("Missing codigo", func(t *testing.T) {
		d := SpotDraft{RvParkID: 1, Estado: domain.SpotEstadoDisponible}
		assert.Contains(t, Spot(d), "codigo_spot")
	})

	t.Run("Bad estado", func(t *testing.T) {
		d := SpotDraft{CodigoSpot: "A01", RvParkID: 1, Estado: "Ocupado"}
		assert.Contains(t, Spot(d), "estado")
	})
}
