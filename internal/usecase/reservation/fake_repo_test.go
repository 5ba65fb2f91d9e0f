package reservation

import (
	"context"
	"time"

	domain "github.com/azaeldev/gestion-hotel/internal/domain/reservation"
	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/models"
)

// fakeRepo imita el contrato transaccional del repositorio real en
// memoria: crear una reserva ocupa la habitación y eliminarla la libera.
type fakeRepo struct {
	habitaciones map[uint]*models.Habitacion
	clientes     map[uint]*models.Cliente
	reservas     map[uint]*models.Reserva
	pagosPorRes  map[uint]int64

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		habitaciones: map[uint]*models.Habitacion{},
		clientes:     map[uint]*models.Cliente{},
		reservas:     map[uint]*models.Reserva{},
		pagosPorRes:  map[uint]int64{},
		nextID:       1,
	}
}

func (f *fakeRepo) GetHabitacion(_ context.Context, id uint) (*models.Habitacion, error) {
	h, ok := f.habitaciones[id]
	if !ok {
		return nil, httperr.ErrBusiness("habitacion_no_disponible")
	}
	return h, nil
}

func (f *fakeRepo) GetCliente(_ context.Context, id uint) (*models.Cliente, error) {
	c, ok := f.clientes[id]
	if !ok {
		return nil, httperr.ErrBusiness("cliente_no_existe")
	}
	return c, nil
}

func (f *fakeRepo) GetReserva(_ context.Context, id uint) (*models.Reserva, error) {
	r, ok := f.reservas[id]
	if !ok {
		return nil, httperr.ErrBusiness("reserva_no_encontrada")
	}
	copia := *r
	return &copia, nil
}

func (f *fakeRepo) AssertNoOverlap(
	_ context.Context,
	habitacionID uint,
	inicio time.Time,
	fin time.Time,
	excludeReservaID uint,
) error {
	for _, r := range f.reservas {
		if r.HabitacionID != habitacionID || r.Estado == "Cancelada" {
			continue
		}
		if excludeReservaID != 0 && r.ID == excludeReservaID {
			continue
		}
		if domain.Solapa(r.FechaInicio, r.FechaFin, inicio, fin) {
			return httperr.ErrBusiness("reserva_solapada")
		}
	}
	return nil
}

func (f *fakeRepo) CreateReserva(_ context.Context, r *models.Reserva) error {
	r.ID = f.nextID
	f.nextID++

	copia := *r
	f.reservas[r.ID] = &copia
	f.habitaciones[r.HabitacionID].Estado = "Ocupada"
	return nil
}

func (f *fakeRepo) UpdateReserva(_ context.Context, r *models.Reserva) error {
	copia := *r
	f.reservas[r.ID] = &copia
	return nil
}

func (f *fakeRepo) DeleteReserva(_ context.Context, r *models.Reserva) error {
	delete(f.reservas, r.ID)
	if h, ok := f.habitaciones[r.HabitacionID]; ok {
		h.Estado = "Disponible"
	}
	return nil
}

func (f *fakeRepo) CountPagosDeReserva(_ context.Context, reservaID uint) (int64, error) {
	return f.pagosPorRes[reservaID], nil
}

func (f *fakeRepo) SearchReservas(_ context.Context, filtro domain.SearchFilter) ([]models.Reserva, error) {
	var out []models.Reserva
	for _, r := range f.reservas {
		if filtro.Estado != "" && r.Estado != filtro.Estado {
			continue
		}
		if filtro.ClienteID != nil && r.ClienteID != *filtro.ClienteID {
			continue
		}
		if filtro.HabitacionID != nil && r.HabitacionID != *filtro.HabitacionID {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
