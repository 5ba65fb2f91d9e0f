package payment

import (
	"context"

	"github.com/azaeldev/gestion-hotel/internal/audit"
	domain "github.com/azaeldev/gestion-hotel/internal/domain/payment"
	"github.com/azaeldev/gestion-hotel/internal/httperr"
)

type DeletePayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeletePayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeletePayment {
	return &DeletePayment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeletePayment) Execute(
	ctx context.Context,
	actor string,
	id uint,
) error {

	pago, err := uc.repo.GetPago(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("pago_no_existe")
	}

	// Acción compensatoria: el reverso del monto y la eliminación del
	// pago ocurren en la misma transacción.
	if err := uc.repo.DeletePago(ctx, pago); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "pago_eliminado",
		Entity:   "pago",
		EntityID: &pago.ID,
	})

	return nil
}
