package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open error: %v", err)
	}

	mock.MatchExpectationsInOrder(false)
	return gdb, mock
}

func dia(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAssertNoOverlapConflict(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewReservaGormRepository(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "reservas"`).
		WithArgs(uint(1), "Cancelada", dia("2026-03-05"), dia("2026-03-01")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := repo.AssertNoOverlap(context.Background(), 1, dia("2026-03-01"), dia("2026-03-05"), 0)
	if !httperr.IsBusiness(err, "reserva_solapada") {
		t.Fatalf("expected reserva_solapada, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAssertNoOverlapExcludesOwnReservation(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewReservaGormRepository(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "reservas" WHERE .* id <> `).
		WithArgs(uint(1), "Cancelada", dia("2026-03-05"), dia("2026-03-01"), uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := repo.AssertNoOverlap(context.Background(), 1, dia("2026-03-01"), dia("2026-03-05"), 7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAssertNoOverlapClean(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewReservaGormRepository(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "reservas"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	if err := repo.AssertNoOverlap(context.Background(), 1, dia("2026-03-01"), dia("2026-03-05"), 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCountPagosDeReserva(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewReservaGormRepository(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "pagos"`).
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountPagosDeReserva(context.Background(), 3)
	if err != nil {
		t.Fatalf("count error: %v", err)
	}
	if count != 2 {
		t.Fatalf("got %d pagos, want 2", count)
	}
}

func reservaRows(total, pagado float64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "fecha_inicio", "fecha_fin", "estado",
		"habitacion_id", "cliente_id",
		"total", "monto_pagado", "estado_pago",
	}).AddRow(
		1, dia("2026-03-01"), dia("2026-03-05"), "Confirmada",
		1, 1,
		total, pagado, "Pendiente",
	)
}

func TestCreatePagoSettlesReservation(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewPagoGormRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "reservas" .* FOR UPDATE`).
		WillReturnRows(reservaRows(200, 0))
	mock.ExpectQuery(`INSERT INTO "pagos"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "reservas"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	pago := &models.Pago{
		ReservaID:             1,
		FechaPago:             dia("2026-03-01"),
		MontoPago:             200,
		MetodoPagoID:          1,
		ReferenciaTransaccion: "REF-001",
	}

	reserva, err := repo.CreatePago(context.Background(), pago)
	if err != nil {
		t.Fatalf("create pago error: %v", err)
	}
	if reserva.MontoPagado != 200 {
		t.Fatalf("monto pagado: got %v want 200", reserva.MontoPagado)
	}
	if reserva.EstadoPago != "Pagado" {
		t.Fatalf("estado pago: got %q want Pagado", reserva.EstadoPago)
	}
	if reserva.SaldoPendiente != 0 {
		t.Fatalf("saldo pendiente: got %v want 0", reserva.SaldoPendiente)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreatePagoAboveBalanceRollsBack(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewPagoGormRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "reservas" .* FOR UPDATE`).
		WillReturnRows(reservaRows(200, 150))
	mock.ExpectRollback()

	pago := &models.Pago{
		ReservaID:    1,
		FechaPago:    dia("2026-03-01"),
		MontoPago:    100,
		MetodoPagoID: 1,
	}

	_, err := repo.CreatePago(context.Background(), pago)
	if !httperr.IsBusiness(err, "monto_invalido") {
		t.Fatalf("expected monto_invalido, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeletePagoRevertsBalance(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewPagoGormRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "reservas" .* FOR UPDATE`).
		WillReturnRows(reservaRows(200, 200))
	mock.ExpectExec(`UPDATE "reservas"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "pagos"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	pago := &models.Pago{ID: 9, ReservaID: 1, MontoPago: 200}

	if err := repo.DeletePago(context.Background(), pago); err != nil {
		t.Fatalf("delete pago error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
