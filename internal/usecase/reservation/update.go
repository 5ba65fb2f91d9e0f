package reservation

import (
	"context"
	"time"

	"github.com/azaeldev/gestion-hotel/internal/audit"
	domain "github.com/azaeldev/gestion-hotel/internal/domain/reservation"
	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/models"
)

// UpdateInput: actualización parcial, los campos ausentes se conservan.
// El total no es actualizable por esta vía.
type UpdateInput struct {
	FechaInicio *time.Time
	FechaFin    *time.Time
	Estado      *string
	MontoPagado *float64
}

type UpdateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateReservation {
	return &UpdateReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateReservation) Execute(
	ctx context.Context,
	actor string,
	id uint,
	in UpdateInput,
) (*models.Reserva, error) {

	reserva, err := uc.repo.GetReserva(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("reserva_no_encontrada")
	}

	if in.FechaInicio != nil {
		reserva.FechaInicio = *in.FechaInicio
	}
	if in.FechaFin != nil {
		reserva.FechaFin = *in.FechaFin
	}
	if in.Estado != nil {
		estado, err := domain.ParseStatus(*in.Estado)
		if err != nil {
			return nil, err
		}
		reserva.Estado = string(estado)
	}
	if in.MontoPagado != nil {
		reserva.MontoPagado = *in.MontoPagado
	}

	if err := domain.ValidateFechas(reserva.FechaInicio, reserva.FechaFin); err != nil {
		return nil, err
	}

	// Mover las fechas revalida el no solapamiento, dejando fuera la
	// propia reserva.
	if in.FechaInicio != nil || in.FechaFin != nil {
		if err := uc.repo.AssertNoOverlap(
			ctx,
			reserva.HabitacionID,
			reserva.FechaInicio,
			reserva.FechaFin,
			reserva.ID,
		); err != nil {
			return nil, err
		}
	}

	// estado_pago se recalcula contra el total, que no cambia aquí
	reserva.Recalcular()

	if err := uc.repo.UpdateReserva(ctx, reserva); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "reserva_actualizada",
		Entity:   "reserva",
		EntityID: &reserva.ID,
	})

	return reserva, nil
}
