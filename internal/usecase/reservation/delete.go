package reservation

import (
	"context"

	"github.com/azaeldev/gestion-hotel/internal/audit"
	domain "github.com/azaeldev/gestion-hotel/internal/domain/reservation"
	"github.com/azaeldev/gestion-hotel/internal/httperr"
)

type DeleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteReservation {
	return &DeleteReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteReservation) Execute(
	ctx context.Context,
	actor string,
	id uint,
) error {

	reserva, err := uc.repo.GetReserva(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("reserva_no_encontrada")
	}

	// Una reserva con pagos registrados exige revertirlos primero;
	// eliminarla dejaría filas de pago huérfanas.
	pagos, err := uc.repo.CountPagosDeReserva(ctx, reserva.ID)
	if err != nil {
		return err
	}
	if pagos > 0 {
		return httperr.ErrBusiness("reserva_con_pagos")
	}

	if err := uc.repo.DeleteReserva(ctx, reserva); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "reserva_eliminada",
		Entity:   "reserva",
		EntityID: &reserva.ID,
	})

	return nil
}
