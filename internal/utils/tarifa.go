package utils

import (
	"fmt"
	"time"

	"rvpark-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// ParseFecha converts a yyyy-mm-dd formatted string into a time.Time.
func ParseFecha(fecha string) (time.Time, error) {
	t, err := time.Parse(dateLayout, fecha)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", fecha)
	}
	return t, nil
}

// FormatFecha renders a time.Time as yyyy-mm-dd.
func FormatFecha(t time.Time) string {
	return t.Format(dateLayout)
}

// DaysBetween returns the number of whole days from start to end, end
// exclusive. 2025-01-01 to 2025-01-11 is 10 days.
func DaysBetween(start, end time.Time) int32 {
	return int32(end.Sub(start).Hours() / 24)
}

// Periodo returns the YYYY-MM report-grouping label for a payment date.
func Periodo(fechaPago string) string {
	t, err := ParseFecha(fechaPago)
	if err != nil {
		return ""
	}
	return t.Format("2006-01")
}

// CalcularMontoTotal computes the total due for a renta before submission.
// For tipo custom the total is the day count between fechaInicio and fechaFin
// (end exclusive) times the tarifa; fechaFin must be strictly after
// fechaInicio. For day/week/month the total is tarifa times duracion, where
// duracion is a positive count of units. The tarifa must be positive in both
// cases. The backend recomputes this on every create and update; totals are
// always non-negative.
func CalcularMontoTotal(tipo domain.TipoRenta, tarifaCents int64, duracion int32, fechaInicio, fechaFin string) (int64, error) {
	if tarifaCents <= 0 {
		return 0, fmt.Errorf("tarifa must be positive")
	}

	if tipo == domain.TipoRentaCustom {
		start, err := ParseFecha(fechaInicio)
		if err != nil {
			return 0, err
		}
		if fechaFin == "" {
			return 0, fmt.Errorf("tipo custom requires fecha_fin")
		}
		end, err := ParseFecha(fechaFin)
		if err != nil {
			return 0, err
		}
		days := DaysBetween(start, end)
		if days <= 0 {
			return 0, fmt.Errorf("fecha_fin must be after fecha_inicio")
		}
		return int64(days) * tarifaCents, nil
	}

	if duracion <= 0 {
		return 0, fmt.Errorf("duracion must be positive")
	}
	return tarifaCents * int64(duracion), nil
}

// CalculoPago is the estimate returned by the first-payment calculation: how
// many days remain until the end of the requested range and the amount due
// for them at the spot's daily tarifa.
type CalculoPago struct {
	DiasRestantes int32 `json:"diasRestantes"`
	MontoCents    int64 `json:"monto"`
}

// CalcularPrimerPago estimates the first payment for a spot over a date
// range. When fechaFin is empty the estimate covers the remainder of the
// start month, mirroring the per-month billing the parks operate on.
func CalcularPrimerPago(spot *domain.Spot, fechaInicio, fechaFin string) (*CalculoPago, error) {
	start, err := ParseFecha(fechaInicio)
	if err != nil {
		return nil, err
	}

	var end time.Time
	if fechaFin != "" {
		end, err = ParseFecha(fechaFin)
		if err != nil {
			return nil, err
		}
	} else {
		// First day of the next month.
		end = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	}

	days := DaysBetween(start, end)
	if days <= 0 {
		return nil, fmt.Errorf("fecha_fin must be after fecha_inicio")
	}

	return &CalculoPago{
		DiasRestantes: days,
		MontoCents:    int64(days) * spot.TarifaDiaCents,
	}, nil
}
