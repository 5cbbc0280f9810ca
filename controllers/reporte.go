package controllers

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/miscanchas/canchas-api/models"
)

// SinActividad is the favourite-day label for a persona with no reservas.
const SinActividad = "Sin actividad"

var nombresDias = [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

// CanchaShare is one row of the per-cancha breakdown: percentage of the
// persona's reservas on that cancha, one decimal place.
type CanchaShare struct {
	Nombre     string  `json:"nombre"`
	Porcentaje float64 `json:"porcentaje"`
}

type ReporteUsuario struct {
	TotalReservas  int           `json:"totalReservas"`
	DiaFavorito    string        `json:"diaFavorito"`
	CanchaFavorita []CanchaShare `json:"canchaFavorita"`
}

// parseFechaReserva interprets a date-only string at noon local time, which
// keeps the weekday stable across timezones. Strings already carrying a
// time component are parsed as-is.
func parseFechaReserva(fecha string) (time.Time, bool) {
	if strings.Contains(fecha, "T") {
		if t, err := time.ParseInLocation("2006-01-02T15:04:05", fecha, time.Local); err == nil {
			return t, true
		}
		if t, err := time.Parse(time.RFC3339, fecha); err == nil {
			return t, true
		}
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", fecha+"T12:00:00", time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// BuildReporteUsuario aggregates a persona's reservas into the activity
// report. Unparseable dates are skipped from the weekday tally but still
// count toward the total. Weekday ties resolve to the first maximum in
// Domingo..Sábado order.
func BuildReporteUsuario(reservas []models.Reserva, canchaNames map[uint]string) ReporteUsuario {
	if len(reservas) == 0 {
		return ReporteUsuario{
			TotalReservas:  0,
			DiaFavorito:    SinActividad,
			CanchaFavorita: []CanchaShare{},
		}
	}

	total := len(reservas)

	var diasContador [7]int
	for _, r := range reservas {
		if fecha, ok := parseFechaReserva(r.FechaReserva); ok {
			diasContador[int(fecha.Weekday())]++
		}
	}
	maxDia := 0
	for i := 1; i < 7; i++ {
		if diasContador[i] > diasContador[maxDia] {
			maxDia = i
		}
	}

	// Count per cancha, keeping first-seen order so equal shares stay in a
	// stable position after the sort.
	counts := make(map[string]int)
	var orden []string
	for _, r := range reservas {
		nombre := canchaNames[r.IDCancha]
		if nombre == "" {
			nombre = fmt.Sprintf("Cancha #%d", r.IDCancha)
		}
		if _, seen := counts[nombre]; !seen {
			orden = append(orden, nombre)
		}
		counts[nombre]++
	}

	shares := make([]CanchaShare, 0, len(orden))
	for _, nombre := range orden {
		porcentaje := math.Round(float64(counts[nombre])/float64(total)*1000) / 10
		shares = append(shares, CanchaShare{Nombre: nombre, Porcentaje: porcentaje})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Porcentaje > shares[j].Porcentaje
	})

	return ReporteUsuario{
		TotalReservas:  total,
		DiaFavorito:    nombresDias[maxDia],
		CanchaFavorita: shares,
	}
}
