package reservation

import (
	"testing"
	"time"

	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/models"
)

func fecha(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestValidateFechas(t *testing.T) {
	if err := ValidateFechas(fecha("2026-03-01"), fecha("2026-03-05")); err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}
	if err := ValidateFechas(fecha("2026-03-05"), fecha("2026-03-01")); !httperr.IsBusiness(err, "fechas_invalidas") {
		t.Fatalf("inverted range accepted: %v", err)
	}
	// rango vacío: misma fecha de inicio y fin
	if err := ValidateFechas(fecha("2026-03-01"), fecha("2026-03-01")); !httperr.IsBusiness(err, "fechas_invalidas") {
		t.Fatalf("empty range accepted: %v", err)
	}
}

func TestSolapa(t *testing.T) {
	cases := []struct {
		name                         string
		aInicio, aFin, bInicio, bFin string
		want                         bool
	}{
		{"rangos disjuntos", "2026-03-01", "2026-03-05", "2026-03-10", "2026-03-15", false},
		{"intersección parcial", "2026-03-01", "2026-03-05", "2026-03-04", "2026-03-10", true},
		{"uno contiene al otro", "2026-03-01", "2026-03-10", "2026-03-03", "2026-03-05", true},
		{"mismo rango", "2026-03-01", "2026-03-05", "2026-03-01", "2026-03-05", true},
		{"checkout el día del checkin", "2026-03-01", "2026-03-05", "2026-03-05", "2026-03-10", false},
		{"checkin el día del checkout", "2026-03-05", "2026-03-10", "2026-03-01", "2026-03-05", false},
	}

	for _, tc := range cases {
		got := Solapa(fecha(tc.aInicio), fecha(tc.aFin), fecha(tc.bInicio), fecha(tc.bFin))
		if got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestCanOcupar(t *testing.T) {
	if err := CanOcupar(&models.Habitacion{Estado: "Disponible"}); err != nil {
		t.Fatalf("available room rejected: %v", err)
	}
	if err := CanOcupar(&models.Habitacion{Estado: "Ocupada"}); !httperr.IsBusiness(err, "habitacion_no_disponible") {
		t.Fatalf("occupied room accepted: %v", err)
	}
	if err := CanOcupar(&models.Habitacion{Estado: "Mantenimiento"}); !httperr.IsBusiness(err, "habitacion_no_disponible") {
		t.Fatalf("maintenance room accepted: %v", err)
	}
	if err := CanOcupar(&models.Habitacion{Estado: "Libre"}); !httperr.IsBusiness(err, "estado_habitacion_invalido") {
		t.Fatalf("unknown status accepted: %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"Confirmada", "Cancelada", "Finalizada"} {
		if _, err := ParseStatus(s); err != nil {
			t.Fatalf("%s rejected: %v", s, err)
		}
	}
	if _, err := ParseStatus("Pendiente"); !httperr.IsBusiness(err, "estado_reserva_invalido") {
		t.Fatalf("unknown status accepted: %v", err)
	}
	if _, err := ParseStatus("confirmada"); !httperr.IsBusiness(err, "estado_reserva_invalido") {
		t.Fatalf("lowercase status accepted: %v", err)
	}
}

func TestPaymentStatusFor(t *testing.T) {
	if got := PaymentStatusFor(0, 200); got != PagoPendiente {
		t.Fatalf("sin pagos: got %q", got)
	}
	if got := PaymentStatusFor(150, 200); got != PagoPendiente {
		t.Fatalf("pago parcial: got %q", got)
	}
	if got := PaymentStatusFor(200, 200); got != PagoPagado {
		t.Fatalf("pago exacto: got %q", got)
	}
	if got := PaymentStatusFor(250, 200); got != PagoPagado {
		t.Fatalf("sobrepago: got %q", got)
	}
}
