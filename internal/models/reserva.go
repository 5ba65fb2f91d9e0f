package models

import (
	"time"

	"gorm.io/gorm"
)

type Reserva struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FechaInicio time.Time `gorm:"column:fecha_inicio;type:date;not null" json:"fechaInicio"`
	FechaFin    time.Time `gorm:"column:fecha_fin;type:date;not null" json:"fechaFin"`
	Estado      string    `gorm:"size:20;not null" json:"estado"`

	HabitacionID uint        `gorm:"column:habitacion_id" json:"habitacionId"`
	Habitacion   *Habitacion `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"habitacion,omitempty"`

	ClienteID uint     `gorm:"column:cliente_id" json:"clienteId"`
	Cliente   *Cliente `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"cliente,omitempty"`

	Total       float64 `gorm:"type:decimal(10,2);not null" json:"total"`
	MontoPagado float64 `gorm:"column:monto_pagado;type:decimal(10,2);default:0" json:"montoPagado"`

	// Derivado de total - monto_pagado, nunca almacenado ni aceptado como input.
	SaldoPendiente float64 `gorm:"-" json:"saldoPendiente"`

	EstadoPago string `gorm:"column:estado_pago;size:20;not null" json:"estadoPago"`
}

func (r *Reserva) AfterFind(*gorm.DB) error {
	r.Recalcular()
	return nil
}

// Recalcular actualiza los campos derivados a partir de total y monto_pagado.
func (r *Reserva) Recalcular() {
	r.SaldoPendiente = r.Total - r.MontoPagado
	if r.MontoPagado >= r.Total {
		r.EstadoPago = "Pagado"
	} else {
		r.EstadoPago = "Pendiente"
	}
}
