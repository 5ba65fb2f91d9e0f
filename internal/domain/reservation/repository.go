package reservation

import (
	"context"
	"time"

	"github.com/azaeldev/gestion-hotel/internal/models"
)

// SearchFilter: filtros conjuntivos, todos opcionales. El estado se compara
// por substring sin distinguir mayúsculas.
type SearchFilter struct {
	Estado       string
	ClienteID    *uint
	HabitacionID *uint
}

type Repository interface {
	// -------- Habitacion / Cliente --------
	GetHabitacion(ctx context.Context, id uint) (*models.Habitacion, error)

	GetCliente(ctx context.Context, id uint) (*models.Cliente, error)

	// -------- Reserva --------
	GetReserva(ctx context.Context, id uint) (*models.Reserva, error)

	// AssertNoOverlap falla con un error de negocio si alguna reserva no
	// cancelada de la habitación se solapa con el rango dado.
	// excludeReservaID (0 = ninguna) deja fuera la propia reserva al
	// revalidar un cambio de fechas.
	AssertNoOverlap(
		ctx context.Context,
		habitacionID uint,
		inicio time.Time,
		fin time.Time,
		excludeReservaID uint,
	) error

	// CreateReserva persiste la reserva y marca la habitación como Ocupada
	// en una sola transacción (ambas o ninguna).
	CreateReserva(ctx context.Context, r *models.Reserva) error

	UpdateReserva(ctx context.Context, r *models.Reserva) error

	// DeleteReserva elimina la reserva y, si la habitación aún existe, la
	// devuelve a Disponible en la misma transacción.
	DeleteReserva(ctx context.Context, r *models.Reserva) error

	CountPagosDeReserva(ctx context.Context, reservaID uint) (int64, error)

	SearchReservas(ctx context.Context, f SearchFilter) ([]models.Reserva, error)
}
