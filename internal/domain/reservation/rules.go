package reservation

import (
	"time"

	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/models"
)

// ===============================
// Domain Rules
// ===============================

// ValidateFechas exige fechaInicio estrictamente anterior a fechaFin.
func ValidateFechas(inicio, fin time.Time) error {
	if !inicio.Before(fin) {
		return httperr.ErrBusiness("fechas_invalidas")
	}
	return nil
}

// Solapa indica si dos rangos de fechas se intersectan.
// Rangos semiabiertos [inicio, fin): salir el mismo día que otro entra
// no es conflicto.
func Solapa(aInicio, aFin, bInicio, bFin time.Time) bool {
	return aInicio.Before(bFin) && bInicio.Before(aFin)
}

// CanOcupar decide si una habitación admite una reserva nueva.
func CanOcupar(h *models.Habitacion) error {
	status, err := ParseRoomStatus(h.Estado)
	if err != nil {
		return err
	}
	if status != RoomDisponible {
		return httperr.ErrBusiness("habitacion_no_disponible")
	}
	return nil
}
