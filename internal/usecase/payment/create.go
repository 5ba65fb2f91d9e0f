package payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/azaeldev/gestion-hotel/internal/audit"
	domain "github.com/azaeldev/gestion-hotel/internal/domain/payment"
	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ReservaID    uint
	MetodoPagoID uint

	FechaPago time.Time
	MontoPago float64

	ReferenciaTransaccion string
	DetallesPago          string
}

// ======================================================
// USE CASE
// ======================================================

type CreatePayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreatePayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreatePayment {
	return &CreatePayment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePayment) Execute(
	ctx context.Context,
	actor string,
	in CreateInput,
) (*models.Pago, error) {

	reserva, err := uc.repo.GetReserva(ctx, in.ReservaID)
	if err != nil {
		return nil, httperr.ErrBusiness("reserva_no_existe")
	}

	if _, err := uc.repo.GetMetodoPago(ctx, in.MetodoPagoID); err != nil {
		return nil, httperr.ErrBusiness("metodo_pago_no_existe")
	}

	// Chequeo rápido antes de abrir la transacción; la validación que
	// cuenta se repite bajo el bloqueo de fila en CreatePago.
	if err := domain.ValidateMonto(reserva, in.MontoPago); err != nil {
		return nil, err
	}

	referencia := in.ReferenciaTransaccion
	if referencia == "" {
		referencia = uuid.NewString()
	}

	pago := &models.Pago{
		ReservaID:             in.ReservaID,
		FechaPago:             in.FechaPago,
		MontoPago:             in.MontoPago,
		MetodoPagoID:          in.MetodoPagoID,
		ReferenciaTransaccion: referencia,
		DetallesPago:          in.DetallesPago,
	}

	if _, err := uc.repo.CreatePago(ctx, pago); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "pago_creado",
		Entity:   "pago",
		EntityID: &pago.ID,
	})

	return pago, nil
}
