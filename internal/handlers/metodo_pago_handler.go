package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/httpresp"
	"github.com/azaeldev/gestion-hotel/internal/models"
)

type MetodoPagoHandler struct {
	db *gorm.DB
}

func NewMetodoPagoHandler(db *gorm.DB) *MetodoPagoHandler {
	return &MetodoPagoHandler{db: db}
}

// --------- Requests ---------

type MetodoPagoRequest struct {
	Nombre string `json:"nombre" binding:"required"`
}

// --------- Handlers ---------

func (h *MetodoPagoHandler) List(c *gin.Context) {
	var metodos []models.MetodoPago
	if err := h.db.Order("id ASC").Find(&metodos).Error; err != nil {
		httperr.Internal(c, "Error al listar métodos de pago.")
		return
	}

	httpresp.OK(c, metodos)
}

func (h *MetodoPagoHandler) Create(c *gin.Context) {
	var req MetodoPagoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "El nombre del método de pago es obligatorio.")
		return
	}

	var count int64
	h.db.Model(&models.MetodoPago{}).Where("nombre = ?", req.Nombre).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "El método de pago ya existe.")
		return
	}

	metodo := models.MetodoPago{Nombre: req.Nombre}

	if err := h.db.Create(&metodo).Error; err != nil {
		httperr.Internal(c, "No se pudo crear el método de pago.")
		return
	}

	httpresp.Created(c, metodo)
}

func (h *MetodoPagoHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var metodo models.MetodoPago
	if err := h.db.First(&metodo, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "El método de pago no existe.")
		return
	}

	var req MetodoPagoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "El nombre del método de pago es obligatorio.")
		return
	}

	var count int64
	h.db.Model(&models.MetodoPago{}).
		Where("nombre = ? AND id <> ?", req.Nombre, metodo.ID).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "Otro método de pago con el mismo nombre ya existe.")
		return
	}

	metodo.Nombre = req.Nombre

	if err := h.db.Save(&metodo).Error; err != nil {
		httperr.Internal(c, "No se pudo actualizar el método de pago.")
		return
	}

	httpresp.Message(c, "Método de pago actualizado exitosamente.")
}

func (h *MetodoPagoHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var metodo models.MetodoPago
	if err := h.db.First(&metodo, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "El método de pago no existe.")
		return
	}

	var pagos int64
	h.db.Model(&models.Pago{}).Where("metodo_pago_id = ?", metodo.ID).Count(&pagos)
	if pagos > 0 {
		httperr.Conflict(c, "El método de pago no puede eliminarse porque está asociado a pagos existentes.")
		return
	}

	if err := h.db.Delete(&metodo).Error; err != nil {
		httperr.Internal(c, "No se pudo eliminar el método de pago.")
		return
	}

	httpresp.Message(c, "Método de pago eliminado exitosamente.")
}
