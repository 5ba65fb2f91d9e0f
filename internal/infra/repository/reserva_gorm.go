package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/azaeldev/gestion-hotel/internal/domain/reservation"
	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/models"
)

type ReservaGormRepository struct {
	db *gorm.DB
}

func NewReservaGormRepository(db *gorm.DB) *ReservaGormRepository {
	return &ReservaGormRepository{db: db}
}

// --------------------------------------------------
// Habitacion / Cliente
// --------------------------------------------------

func (r *ReservaGormRepository) GetHabitacion(
	ctx context.Context,
	id uint,
) (*models.Habitacion, error) {

	var habitacion models.Habitacion
	if err := r.db.WithContext(ctx).First(&habitacion, id).Error; err != nil {
		return nil, err
	}
	return &habitacion, nil
}

func (r *ReservaGormRepository) GetCliente(
	ctx context.Context,
	id uint,
) (*models.Cliente, error) {

	var cliente models.Cliente
	if err := r.db.WithContext(ctx).First(&cliente, id).Error; err != nil {
		return nil, err
	}
	return &cliente, nil
}

// --------------------------------------------------
// Reserva
// --------------------------------------------------

func (r *ReservaGormRepository) GetReserva(
	ctx context.Context,
	id uint,
) (*models.Reserva, error) {

	var reserva models.Reserva
	if err := r.db.WithContext(ctx).
		Preload("Habitacion").
		Preload("Cliente").
		First(&reserva, id).Error; err != nil {
		return nil, err
	}
	return &reserva, nil
}

func (r *ReservaGormRepository) AssertNoOverlap(
	ctx context.Context,
	habitacionID uint,
	inicio time.Time,
	fin time.Time,
	excludeReservaID uint,
) error {

	q := r.db.WithContext(ctx).
		Model(&models.Reserva{}).
		Where(
			"habitacion_id = ? AND estado <> ? AND fecha_inicio < ? AND fecha_fin > ?",
			habitacionID,
			string(domain.StatusCancelada),
			fin,
			inicio,
		)

	if excludeReservaID != 0 {
		q = q.Where("id <> ?", excludeReservaID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("reserva_solapada")
	}

	return nil
}

func (r *ReservaGormRepository) CreateReserva(
	ctx context.Context,
	reserva *models.Reserva,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var habitacion models.Habitacion
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&habitacion, reserva.HabitacionID).Error; err != nil {
			return httperr.ErrBusiness("habitacion_no_disponible")
		}

		// Revalidado bajo el bloqueo: otra petición pudo ocuparla.
		if habitacion.Estado != string(domain.RoomDisponible) {
			return httperr.ErrBusiness("habitacion_no_disponible")
		}

		if err := tx.Create(reserva).Error; err != nil {
			return err
		}

		return tx.Model(&habitacion).
			Update("estado", string(domain.RoomOcupada)).Error
	})
}

func (r *ReservaGormRepository) UpdateReserva(
	ctx context.Context,
	reserva *models.Reserva,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Reserva{}).
		Where("id = ?", reserva.ID).
		Updates(map[string]interface{}{
			"fecha_inicio": reserva.FechaInicio,
			"fecha_fin":    reserva.FechaFin,
			"estado":       reserva.Estado,
			"monto_pagado": reserva.MontoPagado,
			"estado_pago":  reserva.EstadoPago,
		}).Error
}

func (r *ReservaGormRepository) DeleteReserva(
	ctx context.Context,
	reserva *models.Reserva,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var habitacion models.Habitacion
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&habitacion, reserva.HabitacionID).Error

		if err == nil {
			if err := tx.Model(&habitacion).
				Update("estado", string(domain.RoomDisponible)).Error; err != nil {
				return err
			}
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		return tx.Delete(&models.Reserva{}, reserva.ID).Error
	})
}

func (r *ReservaGormRepository) CountPagosDeReserva(
	ctx context.Context,
	reservaID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Pago{}).
		Where("reserva_id = ?", reservaID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReservaGormRepository) SearchReservas(
	ctx context.Context,
	f domain.SearchFilter,
) ([]models.Reserva, error) {

	q := r.db.WithContext(ctx).Model(&models.Reserva{})

	if f.Estado != "" {
		like := "%" + strings.ToLower(f.Estado) + "%"
		q = q.Where("LOWER(estado) LIKE ?", like)
	}

	if f.ClienteID != nil {
		q = q.Where("cliente_id = ?", *f.ClienteID)
	}

	if f.HabitacionID != nil {
		q = q.Where("habitacion_id = ?", *f.HabitacionID)
	}

	var reservas []models.Reserva
	if err := q.
		Preload("Habitacion").
		Preload("Cliente").
		Order("id ASC").
		Find(&reservas).Error; err != nil {
		return nil, err
	}

	return reservas, nil
}

// Compile-time check
var _ domain.Repository = (*ReservaGormRepository)(nil)
