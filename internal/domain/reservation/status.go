package reservation

import "github.com/azaeldev/gestion-hotel/internal/httperr"

// ===============================
// Room Status
// ===============================

type RoomStatus string

const (
	RoomDisponible    RoomStatus = "Disponible"
	RoomOcupada       RoomStatus = "Ocupada"
	RoomMantenimiento RoomStatus = "Mantenimiento"
)

func ParseRoomStatus(s string) (RoomStatus, error) {
	switch RoomStatus(s) {
	case RoomDisponible, RoomOcupada, RoomMantenimiento:
		return RoomStatus(s), nil
	default:
		return "", httperr.ErrBusiness("estado_habitacion_invalido")
	}
}

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusConfirmada Status = "Confirmada"
	StatusCancelada  Status = "Cancelada"
	StatusFinalizada Status = "Finalizada"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusConfirmada, StatusCancelada, StatusFinalizada:
		return Status(s), nil
	default:
		return "", httperr.ErrBusiness("estado_reserva_invalido")
	}
}

// InitialStatus es el estado con el que nace toda reserva.
func InitialStatus() Status {
	return StatusConfirmada
}

// ===============================
// Payment Status (derivado)
// ===============================

type PaymentStatus string

const (
	PagoPagado    PaymentStatus = "Pagado"
	PagoPendiente PaymentStatus = "Pendiente"
)

// PaymentStatusFor deriva el estado de pago: Pagado sii pagado >= total.
func PaymentStatusFor(montoPagado, total float64) PaymentStatus {
	if montoPagado >= total {
		return PagoPagado
	}
	return PagoPendiente
}
