package models

import "time"

type Pago struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReservaID uint     `gorm:"column:reserva_id" json:"reservaId"`
	Reserva   *Reserva `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"reserva,omitempty"`

	FechaPago time.Time `gorm:"column:fecha_pago;type:date;not null" json:"fechaPago"`
	MontoPago float64   `gorm:"column:monto_pago;type:decimal(10,2);not null" json:"montoPago"`

	MetodoPagoID uint        `gorm:"column:metodo_pago_id" json:"metodoPagoId"`
	MetodoPago   *MetodoPago `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"metodoPago,omitempty"`

	ReferenciaTransaccion string `gorm:"column:referencia_transaccion;size:100" json:"referenciaTransaccion"`
	DetallesPago          string `gorm:"column:detalles_pago;size:255" json:"detallesPago"`
}
