package payment

import (
	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/models"
)

// ===============================
// Ledger Rules
// ===============================

// ValidateMonto exige 0 < monto <= saldo pendiente de la reserva.
func ValidateMonto(r *models.Reserva, monto float64) error {
	if monto <= 0 || monto > r.Total-r.MontoPagado {
		return httperr.ErrBusiness("monto_invalido")
	}
	return nil
}

// Aplicar suma el monto al pagado de la reserva y recalcula derivados.
func Aplicar(r *models.Reserva, monto float64) {
	r.MontoPagado += monto
	r.Recalcular()
}

// Revertir descuenta el monto (reverso simétrico de Aplicar).
func Revertir(r *models.Reserva, monto float64) {
	r.MontoPagado -= monto
	r.Recalcular()
}
