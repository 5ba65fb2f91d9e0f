package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/azaeldev/gestion-hotel/internal/domain/payment"
	"github.com/azaeldev/gestion-hotel/internal/models"
)

type PagoGormRepository struct {
	db *gorm.DB
}

func NewPagoGormRepository(db *gorm.DB) *PagoGormRepository {
	return &PagoGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *PagoGormRepository) GetReserva(
	ctx context.Context,
	id uint,
) (*models.Reserva, error) {

	var reserva models.Reserva
	if err := r.db.WithContext(ctx).First(&reserva, id).Error; err != nil {
		return nil, err
	}
	return &reserva, nil
}

func (r *PagoGormRepository) GetMetodoPago(
	ctx context.Context,
	id uint,
) (*models.MetodoPago, error) {

	var metodo models.MetodoPago
	if err := r.db.WithContext(ctx).First(&metodo, id).Error; err != nil {
		return nil, err
	}
	return &metodo, nil
}

func (r *PagoGormRepository) GetPago(
	ctx context.Context,
	id uint,
) (*models.Pago, error) {

	var pago models.Pago
	if err := r.db.WithContext(ctx).First(&pago, id).Error; err != nil {
		return nil, err
	}
	return &pago, nil
}

// --------------------------------------------------
// Ledger
// --------------------------------------------------

func (r *PagoGormRepository) CreatePago(
	ctx context.Context,
	pago *models.Pago,
) (*models.Reserva, error) {

	var reserva models.Reserva

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// El saldo pendiente se valida con la fila bloqueada; dos pagos
		// concurrentes no pueden sobregirar la reserva.
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&reserva, pago.ReservaID).Error; err != nil {
			return err
		}

		if err := domain.ValidateMonto(&reserva, pago.MontoPago); err != nil {
			return err
		}

		if err := tx.Create(pago).Error; err != nil {
			return err
		}

		domain.Aplicar(&reserva, pago.MontoPago)

		return tx.Model(&models.Reserva{}).
			Where("id = ?", reserva.ID).
			Updates(map[string]interface{}{
				"monto_pagado": reserva.MontoPagado,
				"estado_pago":  reserva.EstadoPago,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return &reserva, nil
}

func (r *PagoGormRepository) DeletePago(
	ctx context.Context,
	pago *models.Pago,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var reserva models.Reserva
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&reserva, pago.ReservaID).Error

		if err == nil {
			domain.Revertir(&reserva, pago.MontoPago)

			if err := tx.Model(&models.Reserva{}).
				Where("id = ?", reserva.ID).
				Updates(map[string]interface{}{
					"monto_pagado": reserva.MontoPagado,
					"estado_pago":  reserva.EstadoPago,
				}).Error; err != nil {
				return err
			}
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		return tx.Delete(&models.Pago{}, pago.ID).Error
	})
}

func (r *PagoGormRepository) ListPagos(
	ctx context.Context,
) ([]models.Pago, error) {

	var pagos []models.Pago
	if err := r.db.WithContext(ctx).
		Preload("Reserva").
		Preload("MetodoPago").
		Order("id ASC").
		Find(&pagos).Error; err != nil {
		return nil, err
	}
	return pagos, nil
}

func (r *PagoGormRepository) ListPagosByReserva(
	ctx context.Context,
	reservaID uint,
) ([]models.Pago, error) {

	var pagos []models.Pago
	if err := r.db.WithContext(ctx).
		Where("reserva_id = ?", reservaID).
		Preload("MetodoPago").
		Order("id ASC").
		Find(&pagos).Error; err != nil {
		return nil, err
	}
	return pagos, nil
}

// Compile-time check
var _ domain.Repository = (*PagoGormRepository)(nil)
