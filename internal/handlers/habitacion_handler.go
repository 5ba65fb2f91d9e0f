package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/azaeldev/gestion-hotel/internal/domain/reservation"
	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/httpresp"
	"github.com/azaeldev/gestion-hotel/internal/models"
)

type HabitacionHandler struct {
	db *gorm.DB
}

func NewHabitacionHandler(db *gorm.DB) *HabitacionHandler {
	return &HabitacionHandler{db: db}
}

// --------- Requests ---------

type CreateHabitacionRequest struct {
	Numero         string  `json:"numero" binding:"required"`
	Tipo           string  `json:"tipo" binding:"required"`
	PrecioPorNoche float64 `json:"precioPorNoche" binding:"required,gt=0"`
	Estado         string  `json:"estado"`
}

type UpdateHabitacionRequest struct {
	Numero         *string  `json:"numero,omitempty"`
	Tipo           *string  `json:"tipo,omitempty"`
	PrecioPorNoche *float64 `json:"precioPorNoche,omitempty"`
	Estado         *string  `json:"estado,omitempty"`
}

// --------- Handlers ---------

func (h *HabitacionHandler) List(c *gin.Context) {
	var habitaciones []models.Habitacion
	if err := h.db.Order("id ASC").Find(&habitaciones).Error; err != nil {
		httperr.Internal(c, "Error al listar habitaciones.")
		return
	}

	httpresp.OK(c, habitaciones)
}

func (h *HabitacionHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var habitacion models.Habitacion
	if err := h.db.First(&habitacion, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, fmt.Sprintf("Habitación con ID %s no encontrada.", id))
		return
	}

	httpresp.OK(c, habitacion)
}

func (h *HabitacionHandler) Create(c *gin.Context) {
	var req CreateHabitacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Número, tipo y precio por noche son obligatorios.")
		return
	}

	estado := string(domain.RoomDisponible)
	if req.Estado != "" {
		parsed, err := domain.ParseRoomStatus(req.Estado)
		if err != nil {
			httperr.Validation(c, fmt.Sprintf("Estado de habitación inválido: %q.", req.Estado))
			return
		}
		estado = string(parsed)
	}

	habitacion := models.Habitacion{
		Numero:         req.Numero,
		Tipo:           req.Tipo,
		PrecioPorNoche: req.PrecioPorNoche,
		Estado:         estado,
	}

	if err := h.db.Create(&habitacion).Error; err != nil {
		httperr.Internal(c, "No se pudo crear la habitación.")
		return
	}

	httpresp.Created(c, habitacion)
}

func (h *HabitacionHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var habitacion models.Habitacion
	if err := h.db.First(&habitacion, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, fmt.Sprintf("Habitación con ID %s no encontrada.", id))
		return
	}

	var req UpdateHabitacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Cuerpo de la petición inválido.")
		return
	}

	if req.Numero != nil {
		habitacion.Numero = *req.Numero
	}
	if req.Tipo != nil {
		habitacion.Tipo = *req.Tipo
	}
	if req.PrecioPorNoche != nil {
		if *req.PrecioPorNoche <= 0 {
			httperr.Validation(c, "El precio por noche debe ser positivo.")
			return
		}
		habitacion.PrecioPorNoche = *req.PrecioPorNoche
	}
	if req.Estado != nil {
		parsed, err := domain.ParseRoomStatus(*req.Estado)
		if err != nil {
			httperr.Validation(c, fmt.Sprintf("Estado de habitación inválido: %q.", *req.Estado))
			return
		}
		habitacion.Estado = string(parsed)
	}

	if err := h.db.Save(&habitacion).Error; err != nil {
		httperr.Internal(c, "No se pudo actualizar la habitación.")
		return
	}

	httpresp.Message(c, "Habitación actualizada exitosamente.")
}

func (h *HabitacionHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var habitacion models.Habitacion
	if err := h.db.First(&habitacion, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, fmt.Sprintf("Habitación con ID %s no encontrada.", id))
		return
	}

	var reservas int64
	h.db.Model(&models.Reserva{}).Where("habitacion_id = ?", habitacion.ID).Count(&reservas)
	if reservas > 0 {
		httperr.Conflict(c, "La habitación tiene reservas asociadas y no puede eliminarse.")
		return
	}

	if err := h.db.Delete(&habitacion).Error; err != nil {
		httperr.Internal(c, "No se pudo eliminar la habitación.")
		return
	}

	httpresp.Message(c, "Habitación eliminada exitosamente.")
}

func (h *HabitacionHandler) Buscar(c *gin.Context) {
	tipo := strings.ToLower(strings.TrimSpace(c.Query("tipo")))
	estado := strings.ToLower(strings.TrimSpace(c.Query("estado")))

	q := h.db.Model(&models.Habitacion{})

	if tipo != "" {
		q = q.Where("LOWER(tipo) LIKE ?", "%"+tipo+"%")
	}

	if estado != "" {
		q = q.Where("LOWER(estado) LIKE ?", "%"+estado+"%")
	}

	var habitaciones []models.Habitacion
	if err := q.Order("id ASC").Find(&habitaciones).Error; err != nil {
		httperr.Internal(c, "Error al buscar habitaciones.")
		return
	}

	if len(habitaciones) == 0 {
		httperr.NotFound(c, "No se encontraron habitaciones que coincidan con los criterios de búsqueda.")
		return
	}

	httpresp.OK(c, habitaciones)
}
