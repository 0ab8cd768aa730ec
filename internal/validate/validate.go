// Package validate holds the per-entity form validators. Each function is
// pure: it maps a draft record to a field→message map, and an empty map means
// the draft is acceptable for submission. Services re-run these on every
// create and update.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"rvpark-backend/internal/domain"
)

// Errors maps a field name to its validation message.
type Errors map[string]string

// Valid reports whether the draft passed every rule.
func (e Errors) Valid() bool { return len(e) == 0 }

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	telefonoRegex = regexp.MustCompile(`^[0-9]{10,15}$`)
	telefonoStrip = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// Email reports whether the address matches the accepted shape.
func Email(email string) bool {
	return emailRegex.MatchString(email)
}

// Telefono reports whether the number has 10-15 digits after stripping
// spaces, hyphens and parentheses.
func Telefono(telefono string) bool {
	return telefonoRegex.MatchString(telefonoStrip.Replace(telefono))
}

// ClienteDraft carries the submitted fields for creating or editing a
// cliente. Credentials are only required on create.
type ClienteDraft struct {
	Nombre        string
	Telefono      string
	Email         string
	NombreUsuario string
	Password      string
	Editing       bool
}

func Cliente(d ClienteDraft) Errors {
	errs := Errors{}

	if len(strings.TrimSpace(d.Nombre)) < 3 {
		errs["nombre"] = "el nombre debe tener al menos 3 caracteres"
	}

	if d.Email == "" {
		errs["email"] = "el email es requerido"
	} else if !Email(d.Email) {
		errs["email"] = "ingrese un email válido"
	}

	// Telefono is optional, but must be well formed when present.
	if d.Telefono != "" && !Telefono(d.Telefono) {
		errs["telefono"] = "ingrese un teléfono válido (10-15 dígitos)"
	}

	if !d.Editing {
		if len(strings.TrimSpace(d.NombreUsuario)) < 4 {
			errs["nombre_usuario"] = "el nombre de usuario debe tener al menos 4 caracteres"
		}
		if len(d.Password) < 6 {
			errs["password"] = "la contraseña debe tener al menos 6 caracteres"
		}
	}

	return errs
}

// RentaDraft carries the submitted fields for creating or editing a renta.
type RentaDraft struct {
	ClienteID   int32
	SpotID      int32
	FechaInicio string
	FechaFin    string
	TipoRenta   domain.TipoRenta
	TarifaCents int64
	Duracion    int32
}

func Renta(d RentaDraft) Errors {
	errs := Errors{}

	if d.ClienteID == 0 {
		errs["id_cliente"] = "seleccione un cliente"
	}
	if d.SpotID == 0 {
		errs["id_spot"] = "seleccione un spot"
	}
	if d.FechaInicio == "" {
		errs["fecha_inicio"] = "ingrese la fecha de inicio"
	}
	if d.TarifaCents <= 0 {
		errs["tarifa"] = "la tarifa debe ser mayor a 0"
	}

	switch d.TipoRenta {
	case domain.TipoRentaCustom:
		if d.FechaFin == "" {
			errs["fecha_fin"] = "el tipo custom requiere fecha de fin"
		} else if d.FechaInicio != "" && d.FechaFin <= d.FechaInicio {
			errs["fecha_fin"] = "la fecha de fin debe ser posterior a la fecha de inicio"
		}
	case domain.TipoRentaDay, domain.TipoRentaWeek, domain.TipoRentaMonth:
		if d.Duracion <= 0 {
			errs["duracion"] = "la duración debe ser mayor a 0"
		}
		if d.FechaFin != "" {
			errs["fecha_fin"] = "no indique fecha de fin para rentas por periodo"
		}
	default:
		errs["tipo_renta"] = "tipo de renta inválido"
	}

	return errs
}

// MotivoCancelacion enforces the minimum length for a cancellation reason.
// The comparison is on the trimmed text.
func MotivoCancelacion(motivo string) Errors {
	errs := Errors{}
	if len(strings.TrimSpace(motivo)) < 10 {
		errs["motivo_cancelacion"] = "el motivo debe tener al menos 10 caracteres"
	}
	return errs
}

// PagoDraft carries the submitted fields for registering a payment.
// SaldoCents is the renta's outstanding balance when known; pass a negative
// value to skip the balance check.
type PagoDraft struct {
	RentaID    int32
	FechaPago  string
	MontoCents int64
	MetodoPago domain.MetodoPago
	SaldoCents int64
}

func Pago(d PagoDraft) Errors {
	errs := Errors{}

	if d.RentaID == 0 {
		errs["id_renta"] = "seleccione una renta"
	}
	if d.FechaPago == "" {
		errs["fecha_pago"] = "ingrese la fecha de pago"
	}
	if d.MontoCents <= 0 {
		errs["monto"] = "ingrese un monto válido mayor a 0"
	} else if d.SaldoCents >= 0 && d.MontoCents > d.SaldoCents {
		errs["monto"] = fmt.Sprintf("el monto no puede exceder la deuda pendiente: %d", d.SaldoCents)
	}

	switch d.MetodoPago {
	case domain.MetodoPagoEfectivo, domain.MetodoPagoTarjeta, domain.MetodoPagoTransferencia:
	default:
		errs["metodo_pago"] = "seleccione un método de pago"
	}

	return errs
}

// EventoDraft carries the submitted fields for creating or editing an evento.
type EventoDraft struct {
	RvParkID    int32
	Nombre      string
	FechaInicio string
	FechaFin    string
}

func Evento(d EventoDraft) Errors {
	errs := Errors{}

	if d.RvParkID == 0 {
		errs["id_rv_park"] = "seleccione un RV park"
	}
	if len(strings.TrimSpace(d.Nombre)) < 3 {
		errs["nombre"] = "el nombre debe tener al menos 3 caracteres"
	}
	if d.FechaInicio == "" {
		errs["fecha_inicio"] = "ingrese la fecha de inicio"
	}
	if d.FechaFin == "" {
		errs["fecha_fin"] = "ingrese la fecha de fin"
	} else if d.FechaInicio != "" && d.FechaFin <= d.FechaInicio {
		errs["fecha_fin"] = "la fecha de fin debe ser posterior a la fecha de inicio"
	}

	return errs
}

// RvParkDraft carries the submitted fields for creating or editing a park.
type RvParkDraft struct {
	Nombre        string
	Email         string
	Telefono      string
	GenerarSpots  bool
	CantidadSpots int32
}

func RvPark(d RvParkDraft) Errors {
	errs := Errors{}

	if len(strings.TrimSpace(d.Nombre)) < 3 {
		errs["nombre"] = "el nombre debe tener al menos 3 caracteres"
	}
	if d.Email != "" && !Email(d.Email) {
		errs["email"] = "ingrese un email válido"
	}
	if d.Telefono != "" && !Telefono(d.Telefono) {
		errs["telefono"] = "ingrese un teléfono válido (10-15 dígitos)"
	}
	if d.GenerarSpots && (d.CantidadSpots < 1 || d.CantidadSpots > 500) {
		errs["cantidad_spots"] = "la cantidad de spots debe estar entre 1 y 500"
	}

	return errs
}

// SpotDraft carries the submitted fields for creating or editing a spot.
type SpotDraft struct {
	CodigoSpot string
	RvParkID   int32
	Estado     domain.SpotEstado
}

func Spot(d SpotDraft) Errors {
	errs := Errors{}

	if strings.TrimSpace(d.CodigoSpot) == "" {
		errs["codigo_spot"] = "el código es requerido"
	}
	if d.RvParkID == 0 {
		errs["id_rv_park"] = "seleccione un RV park"
	}

	switch d.Estado {
	case domain.SpotEstadoDisponible, domain.SpotEstadoPagado, domain.SpotEstadoProceso, domain.SpotEstadoCaliche:
	default:
		errs["estado"] = "estado de spot inválido"
	}

	return errs
}
