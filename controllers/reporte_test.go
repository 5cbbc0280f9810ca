package controllers

import (
	"testing"

	"github.com/miscanchas/canchas-api/models"
)

func reservasOn(fechas ...string) []models.Reserva {
	reservas := make([]models.Reserva, 0, len(fechas))
	for _, f := range fechas {
		reservas = append(reservas, models.Reserva{FechaReserva: f, IDCancha: 1})
	}
	return reservas
}

func TestBuildReporteUsuarioEmpty(t *testing.T) {
	reporte := BuildReporteUsuario(nil, nil)

	if reporte.TotalReservas != 0 {
		t.Errorf("TotalReservas = %d, want 0", reporte.TotalReservas)
	}
	if reporte.DiaFavorito != SinActividad {
		t.Errorf("DiaFavorito = %q, want %q", reporte.DiaFavorito, SinActividad)
	}
	if reporte.CanchaFavorita == nil || len(reporte.CanchaFavorita) != 0 {
		t.Errorf("CanchaFavorita = %v, want empty slice", reporte.CanchaFavorita)
	}
}

func TestBuildReporteUsuarioDiaFavorito(t *testing.T) {
	tests := []struct {
		name   string
		fechas []string
		want   string
	}{
		{
			// 2025-03-03, -10, -17 are Mondays; 2025-03-04 a Tuesday.
			name:   "three mondays one tuesday",
			fechas: []string{"2025-03-03", "2025-03-10", "2025-03-17", "2025-03-04"},
			want:   "Lunes",
		},
		{
			// Tie between Domingo (2025-03-02) and Lunes (2025-03-03):
			// first maximum in Domingo..Sábado order wins.
			name:   "tie resolves to earliest day",
			fechas: []string{"2025-03-03", "2025-03-02"},
			want:   "Domingo",
		},
		{
			name:   "single saturday",
			fechas: []string{"2025-03-01"},
			want:   "Sábado",
		},
		{
			// The broken date is skipped from the tally, the Tuesday wins.
			name:   "unparseable date skipped",
			fechas: []string{"not-a-date", "2025-03-04"},
			want:   "Martes",
		},
		{
			name:   "timestamp with time component",
			fechas: []string{"2025-03-05T18:30:00"},
			want:   "Miércoles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporte := BuildReporteUsuario(reservasOn(tt.fechas...), nil)
			if reporte.DiaFavorito != tt.want {
				t.Errorf("DiaFavorito = %q, want %q", reporte.DiaFavorito, tt.want)
			}
		})
	}
}

func TestBuildReporteUsuarioTotalCountsUnparseable(t *testing.T) {
	reporte := BuildReporteUsuario(reservasOn("garbage", "2025-03-04"), nil)
	if reporte.TotalReservas != 2 {
		t.Errorf("TotalReservas = %d, want 2 (unparseable dates still count)", reporte.TotalReservas)
	}
}

func TestBuildReporteUsuarioCanchaShares(t *testing.T) {
	reservas := []models.Reserva{
		{FechaReserva: "2025-03-03", IDCancha: 1},
		{FechaReserva: "2025-03-04", IDCancha: 1},
		{FechaReserva: "2025-03-05", IDCancha: 2},
	}
	nombres := map[uint]string{1: "Fútbol 5", 2: "Paddle"}

	reporte := BuildReporteUsuario(reservas, nombres)

	if len(reporte.CanchaFavorita) != 2 {
		t.Fatalf("len(CanchaFavorita) = %d, want 2", len(reporte.CanchaFavorita))
	}
	first := reporte.CanchaFavorita[0]
	if first.Nombre != "Fútbol 5" || first.Porcentaje != 66.7 {
		t.Errorf("first share = %+v, want Fútbol 5 at 66.7", first)
	}
	second := reporte.CanchaFavorita[1]
	if second.Nombre != "Paddle" || second.Porcentaje != 33.3 {
		t.Errorf("second share = %+v, want Paddle at 33.3", second)
	}
}

func TestBuildReporteUsuarioUnknownCancha(t *testing.T) {
	reservas := []models.Reserva{{FechaReserva: "2025-03-03", IDCancha: 7}}

	reporte := BuildReporteUsuario(reservas, map[uint]string{})

	if len(reporte.CanchaFavorita) != 1 {
		t.Fatalf("len(CanchaFavorita) = %d, want 1", len(reporte.CanchaFavorita))
	}
	if reporte.CanchaFavorita[0].Nombre != "Cancha #7" {
		t.Errorf("Nombre = %q, want \"Cancha #7\"", reporte.CanchaFavorita[0].Nombre)
	}
	if reporte.CanchaFavorita[0].Porcentaje != 100.0 {
		t.Errorf("Porcentaje = %v, want 100", reporte.CanchaFavorita[0].Porcentaje)
	}
}
