package reservation

import (
	"context"
	"testing"

	domain "github.com/azaeldev/gestion-hotel/internal/domain/reservation"
	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/models"
)

func repoConReserva() *fakeRepo {
	repo := repoConDatos()
	reserva := &models.Reserva{
		ID:           1,
		HabitacionID: 1,
		ClienteID:    1,
		Estado:       "Confirmada",
		FechaInicio:  fecha("2026-03-01"),
		FechaFin:     fecha("2026-03-05"),
		Total:        200,
		MontoPagado:  0,
	}
	reserva.Recalcular()
	repo.reservas[1] = reserva
	repo.nextID = 2
	repo.habitaciones[1].Estado = "Ocupada"
	return repo
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestUpdateReservationMontoPagado(t *testing.T) {
	repo := repoConReserva()
	uc := NewUpdateReservation(repo, nil)

	reserva, err := uc.Execute(context.Background(), "admin@hotel.com", 1, UpdateInput{
		MontoPagado: floatPtr(200),
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if reserva.EstadoPago != "Pagado" {
		t.Fatalf("estado pago: got %q want Pagado", reserva.EstadoPago)
	}
	if reserva.SaldoPendiente != 0 {
		t.Fatalf("saldo pendiente: got %v want 0", reserva.SaldoPendiente)
	}
	// los campos no enviados se conservan
	if !reserva.FechaInicio.Equal(fecha("2026-03-01")) {
		t.Fatalf("fecha inicio changed unexpectedly: %v", reserva.FechaInicio)
	}
	if reserva.Estado != "Confirmada" {
		t.Fatalf("estado changed unexpectedly: %q", reserva.Estado)
	}
}

func TestUpdateReservationEstado(t *testing.T) {
	repo := repoConReserva()
	uc := NewUpdateReservation(repo, nil)

	reserva, err := uc.Execute(context.Background(), "admin@hotel.com", 1, UpdateInput{
		Estado: strPtr("Cancelada"),
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if reserva.Estado != "Cancelada" {
		t.Fatalf("estado: got %q want Cancelada", reserva.Estado)
	}
}

func TestUpdateReservationInvalidEstado(t *testing.T) {
	repo := repoConReserva()
	uc := NewUpdateReservation(repo, nil)

	_, err := uc.Execute(context.Background(), "admin@hotel.com", 1, UpdateInput{
		Estado: strPtr("Archivada"),
	})
	if !httperr.IsBusiness(err, "estado_reserva_invalido") {
		t.Fatalf("expected estado_reserva_invalido, got %v", err)
	}
	if repo.reservas[1].Estado != "Confirmada" {
		t.Fatalf("stored reserva should be untouched, got %q", repo.reservas[1].Estado)
	}
}

func TestUpdateReservationInvalidDates(t *testing.T) {
	repo := repoConReserva()
	uc := NewUpdateReservation(repo, nil)

	inicio := fecha("2026-03-10")
	_, err := uc.Execute(context.Background(), "admin@hotel.com", 1, UpdateInput{
		FechaInicio: &inicio,
	})
	if !httperr.IsBusiness(err, "fechas_invalidas") {
		t.Fatalf("expected fechas_invalidas, got %v", err)
	}
}

func TestUpdateReservationRedateOntoOtherReservation(t *testing.T) {
	repo := repoConReserva()
	otra := &models.Reserva{
		ID:           2,
		HabitacionID: 1,
		ClienteID:    1,
		Estado:       "Confirmada",
		FechaInicio:  fecha("2026-03-10"),
		FechaFin:     fecha("2026-03-15"),
		Total:        100,
	}
	otra.Recalcular()
	repo.reservas[2] = otra
	repo.nextID = 3
	uc := NewUpdateReservation(repo, nil)

	fin := fecha("2026-03-12")
	_, err := uc.Execute(context.Background(), "admin@hotel.com", 1, UpdateInput{
		FechaFin: &fin,
	})
	if !httperr.IsBusiness(err, "reserva_solapada") {
		t.Fatalf("expected reserva_solapada, got %v", err)
	}
	if !repo.reservas[1].FechaFin.Equal(fecha("2026-03-05")) {
		t.Fatalf("stored reserva should keep its dates, got %v", repo.reservas[1].FechaFin)
	}
}

func TestUpdateReservationRedateIgnoresItself(t *testing.T) {
	repo := repoConReserva()
	uc := NewUpdateReservation(repo, nil)

	// Desplaza el rango sobre sus propias fechas actuales.
	fin := fecha("2026-03-04")
	reserva, err := uc.Execute(context.Background(), "admin@hotel.com", 1, UpdateInput{
		FechaFin: &fin,
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if !reserva.FechaFin.Equal(fecha("2026-03-04")) {
		t.Fatalf("fecha fin: got %v want 2026-03-04", reserva.FechaFin)
	}
}

func TestUpdateReservationNotFound(t *testing.T) {
	repo := repoConDatos()
	uc := NewUpdateReservation(repo, nil)

	_, err := uc.Execute(context.Background(), "admin@hotel.com", 42, UpdateInput{})
	if !httperr.IsBusiness(err, "reserva_no_encontrada") {
		t.Fatalf("expected reserva_no_encontrada, got %v", err)
	}
}

func TestDeleteReservationFreesRoom(t *testing.T) {
	repo := repoConReserva()
	uc := NewDeleteReservation(repo, nil)

	if err := uc.Execute(context.Background(), "admin@hotel.com", 1); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if _, ok := repo.reservas[1]; ok {
		t.Fatalf("reserva should be removed")
	}
	if repo.habitaciones[1].Estado != "Disponible" {
		t.Fatalf("room should be back to Disponible, got %q", repo.habitaciones[1].Estado)
	}
}

func TestDeleteReservationWithPayments(t *testing.T) {
	repo := repoConReserva()
	repo.pagosPorRes[1] = 2
	uc := NewDeleteReservation(repo, nil)

	err := uc.Execute(context.Background(), "admin@hotel.com", 1)
	if !httperr.IsBusiness(err, "reserva_con_pagos") {
		t.Fatalf("expected reserva_con_pagos, got %v", err)
	}
	if _, ok := repo.reservas[1]; !ok {
		t.Fatalf("reserva should still exist")
	}
}

func TestDeleteReservationNotFound(t *testing.T) {
	repo := repoConDatos()
	uc := NewDeleteReservation(repo, nil)

	err := uc.Execute(context.Background(), "admin@hotel.com", 42)
	if !httperr.IsBusiness(err, "reserva_no_encontrada") {
		t.Fatalf("expected reserva_no_encontrada, got %v", err)
	}
}

func TestSearchReservations(t *testing.T) {
	repo := repoConReserva()
	uc := NewSearchReservations(repo)

	reservas, err := uc.Execute(context.Background(), domain.SearchFilter{
		Estado: "Confirmada",
	})
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(reservas) != 1 {
		t.Fatalf("got %d reservas, want 1", len(reservas))
	}
}

func TestSearchReservationsEmpty(t *testing.T) {
	repo := repoConReserva()
	uc := NewSearchReservations(repo)

	_, err := uc.Execute(context.Background(), domain.SearchFilter{
		Estado: "Finalizada",
	})
	if !httperr.IsBusiness(err, "sin_resultados") {
		t.Fatalf("expected sin_resultados, got %v", err)
	}
}
