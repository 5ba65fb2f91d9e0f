package reservation

import (
	"context"
	"time"

	"github.com/azaeldev/gestion-hotel/internal/audit"
	domain "github.com/azaeldev/gestion-hotel/internal/domain/reservation"
	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	HabitacionID uint
	ClienteID    uint

	FechaInicio time.Time
	FechaFin    time.Time

	Total       float64
	MontoPagado float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	actor string,
	in CreateInput,
) (*models.Reserva, error) {

	// --------------------------------------------------
	// Habitación: debe existir y estar Disponible
	// --------------------------------------------------
	habitacion, err := uc.repo.GetHabitacion(ctx, in.HabitacionID)
	if err != nil {
		return nil, httperr.ErrBusiness("habitacion_no_disponible")
	}

	if err := domain.CanOcupar(habitacion); err != nil {
		return nil, httperr.ErrBusiness("habitacion_no_disponible")
	}

	// --------------------------------------------------
	// Cliente
	// --------------------------------------------------
	if _, err := uc.repo.GetCliente(ctx, in.ClienteID); err != nil {
		return nil, httperr.ErrBusiness("cliente_no_existe")
	}

	// --------------------------------------------------
	// Fechas: orden y no solapamiento sobre la habitación
	// --------------------------------------------------
	if err := domain.ValidateFechas(in.FechaInicio, in.FechaFin); err != nil {
		return nil, err
	}

	if err := uc.repo.AssertNoOverlap(
		ctx,
		in.HabitacionID,
		in.FechaInicio,
		in.FechaFin,
		0,
	); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Creación: reserva + habitación Ocupada en una transacción
	// --------------------------------------------------
	reserva := &models.Reserva{
		FechaInicio:  in.FechaInicio,
		FechaFin:     in.FechaFin,
		Estado:       string(domain.InitialStatus()),
		HabitacionID: in.HabitacionID,
		ClienteID:    in.ClienteID,
		Total:        in.Total,
		MontoPagado:  in.MontoPagado,
	}
	reserva.Recalcular()

	if err := uc.repo.CreateReserva(ctx, reserva); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "reserva_creada",
		Entity:   "reserva",
		EntityID: &reserva.ID,
	})

	return reserva, nil
}
