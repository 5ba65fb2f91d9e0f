package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/azaeldev/gestion-hotel/internal/domain/reservation"
	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/httpresp"
	"github.com/azaeldev/gestion-hotel/internal/middleware"
	"github.com/azaeldev/gestion-hotel/internal/models"
	ucReservation "github.com/azaeldev/gestion-hotel/internal/usecase/reservation"
)

type ReservaHandler struct {
	db       *gorm.DB
	createUC *ucReservation.CreateReservation
	updateUC *ucReservation.UpdateReservation
	deleteUC *ucReservation.DeleteReservation
	searchUC *ucReservation.SearchReservations
}

func NewReservaHandler(
	db *gorm.DB,
	createUC *ucReservation.CreateReservation,
	updateUC *ucReservation.UpdateReservation,
	deleteUC *ucReservation.DeleteReservation,
	searchUC *ucReservation.SearchReservations,
) *ReservaHandler {
	return &ReservaHandler{
		db:       db,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		searchUC: searchUC,
	}
}

// --------- Requests ---------

type CreateReservaRequest struct {
	FechaInicio  string  `json:"fechaInicio" binding:"required"`
	FechaFin     string  `json:"fechaFin" binding:"required"`
	HabitacionID uint    `json:"habitacionId" binding:"required"`
	ClienteID    uint    `json:"clienteId" binding:"required"`
	Total        float64 `json:"total" binding:"required,gt=0"`
	MontoPagado  float64 `json:"montoPagado"`
}

type UpdateReservaRequest struct {
	FechaInicio *string  `json:"fechaInicio,omitempty"`
	FechaFin    *string  `json:"fechaFin,omitempty"`
	Estado      *string  `json:"estado,omitempty"`
	MontoPagado *float64 `json:"montoPagado,omitempty"`
}

// --------- Responses ---------

type reservaHabitacion struct {
	ID     uint   `json:"id"`
	Numero string `json:"numero"`
	Tipo   string `json:"tipo"`
}

type reservaCliente struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

type reservaResponse struct {
	ID          uint   `json:"id"`
	FechaInicio string `json:"fechaInicio"`
	FechaFin    string `json:"fechaFin"`
	Estado      string `json:"estado"`

	Habitacion *reservaHabitacion `json:"habitacion,omitempty"`
	Cliente    *reservaCliente    `json:"cliente,omitempty"`

	Total          float64 `json:"total"`
	MontoPagado    float64 `json:"montoPagado"`
	SaldoPendiente float64 `json:"saldoPendiente"`
	EstadoPago     string  `json:"estadoPago"`
}

func toReservaResponse(r models.Reserva) reservaResponse {
	resp := reservaResponse{
		ID:             r.ID,
		FechaInicio:    r.FechaInicio.Format(dateLayout),
		FechaFin:       r.FechaFin.Format(dateLayout),
		Estado:         r.Estado,
		Total:          r.Total,
		MontoPagado:    r.MontoPagado,
		SaldoPendiente: r.SaldoPendiente,
		EstadoPago:     r.EstadoPago,
	}

	if r.Habitacion != nil {
		resp.Habitacion = &reservaHabitacion{
			ID:     r.Habitacion.ID,
			Numero: r.Habitacion.Numero,
			Tipo:   r.Habitacion.Tipo,
		}
	}

	if r.Cliente != nil {
		resp.Cliente = &reservaCliente{
			ID:       r.Cliente.ID,
			Nombre:   r.Cliente.Nombre,
			Apellido: r.Cliente.Apellido,
		}
	}

	return resp
}

func toReservaResponses(reservas []models.Reserva) []reservaResponse {
	out := make([]reservaResponse, 0, len(reservas))
	for _, r := range reservas {
		out = append(out, toReservaResponse(r))
	}
	return out
}

// --------- Handlers ---------

func (h *ReservaHandler) List(c *gin.Context) {
	var reservas []models.Reserva
	if err := h.db.
		Preload("Habitacion").
		Preload("Cliente").
		Order("id ASC").
		Find(&reservas).Error; err != nil {
		httperr.Internal(c, "Error al listar reservas.")
		return
	}

	httpresp.OK(c, toReservaResponses(reservas))
}

func (h *ReservaHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var reserva models.Reserva
	if err := h.db.
		Preload("Habitacion").
		Preload("Cliente").
		First(&reserva, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, fmt.Sprintf("Reserva con ID %s no encontrada.", id))
		return
	}

	httpresp.OK(c, toReservaResponse(reserva))
}

func (h *ReservaHandler) Create(c *gin.Context) {
	var req CreateReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Fechas, habitación, cliente y total son obligatorios.")
		return
	}

	inicio, err := parseFecha(req.FechaInicio)
	if err != nil {
		httperr.Validation(c, "Formato de fechaInicio inválido, se espera AAAA-MM-DD.")
		return
	}

	fin, err := parseFecha(req.FechaFin)
	if err != nil {
		httperr.Validation(c, "Formato de fechaFin inválido, se espera AAAA-MM-DD.")
		return
	}

	reserva, err := h.createUC.Execute(
		c.Request.Context(),
		middleware.ActorEmail(c),
		ucReservation.CreateInput{
			HabitacionID: req.HabitacionID,
			ClienteID:    req.ClienteID,
			FechaInicio:  inicio,
			FechaFin:     fin,
			Total:        req.Total,
			MontoPagado:  req.MontoPagado,
		},
	)
	if err != nil {
		h.writeReservaError(c, err)
		return
	}

	httpresp.Created(c, toReservaResponse(*reserva))
}

func (h *ReservaHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Validation(c, "ID de reserva inválido.")
		return
	}

	var req UpdateReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Cuerpo de la petición inválido.")
		return
	}

	in := ucReservation.UpdateInput{
		Estado:      req.Estado,
		MontoPagado: req.MontoPagado,
	}

	if req.FechaInicio != nil {
		inicio, err := parseFecha(*req.FechaInicio)
		if err != nil {
			httperr.Validation(c, "Formato de fechaInicio inválido, se espera AAAA-MM-DD.")
			return
		}
		in.FechaInicio = &inicio
	}

	if req.FechaFin != nil {
		fin, err := parseFecha(*req.FechaFin)
		if err != nil {
			httperr.Validation(c, "Formato de fechaFin inválido, se espera AAAA-MM-DD.")
			return
		}
		in.FechaFin = &fin
	}

	if _, err := h.updateUC.Execute(
		c.Request.Context(),
		middleware.ActorEmail(c),
		uint(id),
		in,
	); err != nil {
		h.writeReservaError(c, err)
		return
	}

	httpresp.Message(c, "Reserva actualizada exitosamente.")
}

func (h *ReservaHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Validation(c, "ID de reserva inválido.")
		return
	}

	if err := h.deleteUC.Execute(
		c.Request.Context(),
		middleware.ActorEmail(c),
		uint(id),
	); err != nil {
		h.writeReservaError(c, err)
		return
	}

	httpresp.Message(c, "Reserva eliminada exitosamente.")
}

func (h *ReservaHandler) Buscar(c *gin.Context) {
	filter := domain.SearchFilter{
		Estado: c.Query("estado"),
	}

	if s := c.Query("clienteId"); s != "" {
		id, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			httperr.Validation(c, "clienteId inválido.")
			return
		}
		clienteID := uint(id)
		filter.ClienteID = &clienteID
	}

	if s := c.Query("habitacionId"); s != "" {
		id, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			httperr.Validation(c, "habitacionId inválido.")
			return
		}
		habitacionID := uint(id)
		filter.HabitacionID = &habitacionID
	}

	reservas, err := h.searchUC.Execute(c.Request.Context(), filter)
	if err != nil {
		h.writeReservaError(c, err)
		return
	}

	httpresp.OK(c, toReservaResponses(reservas))
}

// --------- Error mapping ---------

func (h *ReservaHandler) writeReservaError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "habitacion_no_disponible":
		httperr.Validation(c, "La habitación especificada no existe o no está disponible.")
	case "cliente_no_existe":
		httperr.Validation(c, "El cliente especificado no existe.")
	case "fechas_invalidas":
		httperr.Validation(c, "La fecha de inicio debe ser anterior a la fecha de fin.")
	case "estado_reserva_invalido":
		httperr.Validation(c, "Estado de reserva inválido.")
	case "reserva_solapada":
		httperr.Conflict(c, "Las fechas se solapan con otra reserva de la misma habitación.")
	case "reserva_con_pagos":
		httperr.Conflict(c, "La reserva tiene pagos registrados; reviértalos antes de eliminarla.")
	case "reserva_no_encontrada":
		httperr.NotFound(c, "Reserva no encontrada.")
	case "sin_resultados":
		httperr.NotFound(c, "No se encontraron reservas que coincidan con los criterios de búsqueda.")
	default:
		httperr.Internal(c, "Error interno.")
	}
}
