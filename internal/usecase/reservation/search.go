package reservation

import (
	"context"

	domain "github.com/azaeldev/gestion-hotel/internal/domain/reservation"
	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/models"
)

type SearchReservations struct {
	repo domain.Repository
}

func NewSearchReservations(repo domain.Repository) *SearchReservations {
	return &SearchReservations{repo: repo}
}

func (uc *SearchReservations) Execute(
	ctx context.Context,
	f domain.SearchFilter,
) ([]models.Reserva, error) {

	reservas, err := uc.repo.SearchReservas(ctx, f)
	if err != nil {
		return nil, err
	}

	// Convención heredada: búsqueda sin coincidencias responde not-found.
	if len(reservas) == 0 {
		return nil, httperr.ErrBusiness("sin_resultados")
	}

	return reservas, nil
}
