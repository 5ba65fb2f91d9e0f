package payment

import (
	"context"

	"github.com/azaeldev/gestion-hotel/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	GetReserva(ctx context.Context, id uint) (*models.Reserva, error)

	GetMetodoPago(ctx context.Context, id uint) (*models.MetodoPago, error)

	GetPago(ctx context.Context, id uint) (*models.Pago, error)

	// -------- Ledger --------

	// CreatePago bloquea la fila de la reserva, valida el monto contra el
	// saldo pendiente bajo el bloqueo, inserta el pago e incrementa
	// monto_pagado, todo en una transacción. Devuelve la reserva ya
	// actualizada.
	CreatePago(ctx context.Context, p *models.Pago) (*models.Reserva, error)

	// DeletePago descuenta el monto del pago de la reserva (si aún existe)
	// y elimina el pago en una transacción.
	DeletePago(ctx context.Context, p *models.Pago) error

	ListPagos(ctx context.Context) ([]models.Pago, error)

	ListPagosByReserva(ctx context.Context, reservaID uint) ([]models.Pago, error)
}
