package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/azaeldev/gestion-hotel/internal/domain/payment"
	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/httpresp"
	"github.com/azaeldev/gestion-hotel/internal/middleware"
	ucPayment "github.com/azaeldev/gestion-hotel/internal/usecase/payment"
)

type PagoHandler struct {
	repo     domain.Repository
	createUC *ucPayment.CreatePayment
	deleteUC *ucPayment.DeletePayment
	listUC   *ucPayment.ListPaymentsByReservation
}

func NewPagoHandler(
	repo domain.Repository,
	createUC *ucPayment.CreatePayment,
	deleteUC *ucPayment.DeletePayment,
	listUC *ucPayment.ListPaymentsByReservation,
) *PagoHandler {
	return &PagoHandler{
		repo:     repo,
		createUC: createUC,
		deleteUC: deleteUC,
		listUC:   listUC,
	}
}

// --------- Requests ---------

type CreatePagoRequest struct {
	ReservaID             uint    `json:"reservaId" binding:"required"`
	FechaPago             string  `json:"fechaPago" binding:"required"`
	MontoPago             float64 `json:"montoPago" binding:"required"`
	MetodoPagoID          uint    `json:"metodoPagoId" binding:"required"`
	ReferenciaTransaccion string  `json:"referenciaTransaccion"`
	DetallesPago          string  `json:"detallesPago"`
}

// --------- Handlers ---------

func (h *PagoHandler) List(c *gin.Context) {
	pagos, err := h.repo.ListPagos(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Error al listar pagos.")
		return
	}

	httpresp.OK(c, pagos)
}

func (h *PagoHandler) ListByReserva(c *gin.Context) {
	reservaID, err := strconv.ParseUint(c.Param("reservaId"), 10, 32)
	if err != nil {
		httperr.Validation(c, "ID de reserva inválido.")
		return
	}

	pagos, err := h.listUC.Execute(c.Request.Context(), uint(reservaID))
	if err != nil {
		h.writePagoError(c, err)
		return
	}

	httpresp.OK(c, pagos)
}

func (h *PagoHandler) Create(c *gin.Context) {
	var req CreatePagoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Reserva, fecha, monto y método de pago son obligatorios.")
		return
	}

	fecha, err := parseFecha(req.FechaPago)
	if err != nil {
		httperr.Validation(c, "Formato de fechaPago inválido, se espera AAAA-MM-DD.")
		return
	}

	pago, err := h.createUC.Execute(
		c.Request.Context(),
		middleware.ActorEmail(c),
		ucPayment.CreateInput{
			ReservaID:             req.ReservaID,
			MetodoPagoID:          req.MetodoPagoID,
			FechaPago:             fecha,
			MontoPago:             req.MontoPago,
			ReferenciaTransaccion: req.ReferenciaTransaccion,
			DetallesPago:          req.DetallesPago,
		},
	)
	if err != nil {
		h.writePagoError(c, err)
		return
	}

	httpresp.Created(c, pago)
}

func (h *PagoHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Validation(c, "ID de pago inválido.")
		return
	}

	if err := h.deleteUC.Execute(
		c.Request.Context(),
		middleware.ActorEmail(c),
		uint(id),
	); err != nil {
		h.writePagoError(c, err)
		return
	}

	httpresp.Message(c, "Pago eliminado exitosamente.")
}

// --------- Error mapping ---------

func (h *PagoHandler) writePagoError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "reserva_no_existe":
		httperr.NotFound(c, "La reserva especificada no existe.")
	case "metodo_pago_no_existe":
		httperr.NotFound(c, "El método de pago especificado no existe.")
	case "monto_invalido":
		httperr.Validation(c, "El monto de pago es inválido.")
	case "pago_no_existe":
		httperr.NotFound(c, "El pago especificado no existe.")
	case "sin_pagos":
		httperr.NotFound(c, "No se encontraron pagos para esta reserva.")
	default:
		httperr.Internal(c, "Error interno.")
	}
}
