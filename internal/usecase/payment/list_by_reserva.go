package payment

import (
	"context"

	domain "github.com/azaeldev/gestion-hotel/internal/domain/payment"
	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/models"
)

type ListPaymentsByReservation struct {
	repo domain.Repository
}

func NewListPaymentsByReservation(repo domain.Repository) *ListPaymentsByReservation {
	return &ListPaymentsByReservation{repo: repo}
}

func (uc *ListPaymentsByReservation) Execute(
	ctx context.Context,
	reservaID uint,
) ([]models.Pago, error) {

	pagos, err := uc.repo.ListPagosByReserva(ctx, reservaID)
	if err != nil {
		return nil, err
	}

	// Misma convención que la búsqueda de reservas: vacío es not-found.
	if len(pagos) == 0 {
		return nil, httperr.ErrBusiness("sin_pagos")
	}

	return pagos, nil
}
