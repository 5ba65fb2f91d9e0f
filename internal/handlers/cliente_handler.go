package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/httpresp"
	"github.com/azaeldev/gestion-hotel/internal/models"
)

type ClienteHandler struct {
	db *gorm.DB
}

func NewClienteHandler(db *gorm.DB) *ClienteHandler {
	return &ClienteHandler{db: db}
}

// --------- Requests ---------

type CreateClienteRequest struct {
	Nombre             string `json:"nombre" binding:"required"`
	Apellido           string `json:"apellido" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	Telefono           string `json:"telefono" binding:"required"`
	DocumentoIdentidad string `json:"documentoIdentidad" binding:"required"`
}

type UpdateClienteRequest struct {
	Nombre             *string `json:"nombre,omitempty"`
	Apellido           *string `json:"apellido,omitempty"`
	Email              *string `json:"email,omitempty"`
	Telefono           *string `json:"telefono,omitempty"`
	DocumentoIdentidad *string `json:"documentoIdentidad,omitempty"`
}

// --------- Handlers ---------

func (h *ClienteHandler) List(c *gin.Context) {
	var clientes []models.Cliente
	if err := h.db.Order("id ASC").Find(&clientes).Error; err != nil {
		httperr.Internal(c, "Error al listar clientes.")
		return
	}

	httpresp.OK(c, clientes)
}

func (h *ClienteHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var cliente models.Cliente
	if err := h.db.First(&cliente, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, fmt.Sprintf("Cliente con ID %s no encontrado.", id))
		return
	}

	httpresp.OK(c, cliente)
}

func (h *ClienteHandler) Create(c *gin.Context) {
	var req CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Todos los campos son obligatorios.")
		return
	}

	var count int64
	h.db.Model(&models.Cliente{}).
		Where("email = ? OR documento_identidad = ?", req.Email, req.DocumentoIdentidad).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "Ya existe un cliente con el mismo email o documento de identidad.")
		return
	}

	cliente := models.Cliente{
		Nombre:             req.Nombre,
		Apellido:           req.Apellido,
		Email:              req.Email,
		Telefono:           req.Telefono,
		DocumentoIdentidad: req.DocumentoIdentidad,
	}

	if err := h.db.Create(&cliente).Error; err != nil {
		httperr.Internal(c, "No se pudo crear el cliente.")
		return
	}

	httpresp.Created(c, cliente)
}

func (h *ClienteHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var cliente models.Cliente
	if err := h.db.First(&cliente, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, fmt.Sprintf("Cliente con ID %s no encontrado.", id))
		return
	}

	var req UpdateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Cuerpo de la petición inválido.")
		return
	}

	if req.Nombre != nil {
		cliente.Nombre = *req.Nombre
	}
	if req.Apellido != nil {
		cliente.Apellido = *req.Apellido
	}
	if req.Email != nil {
		cliente.Email = *req.Email
	}
	if req.Telefono != nil {
		cliente.Telefono = *req.Telefono
	}
	if req.DocumentoIdentidad != nil {
		cliente.DocumentoIdentidad = *req.DocumentoIdentidad
	}

	if err := h.db.Save(&cliente).Error; err != nil {
		httperr.Internal(c, "No se pudo actualizar el cliente.")
		return
	}

	httpresp.Message(c, "Cliente actualizado exitosamente.")
}

func (h *ClienteHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var cliente models.Cliente
	if err := h.db.First(&cliente, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, fmt.Sprintf("Cliente con ID %s no encontrado.", id))
		return
	}

	// Un cliente con reservas no se elimina: quedarían referencias huérfanas.
	var reservas int64
	h.db.Model(&models.Reserva{}).Where("cliente_id = ?", cliente.ID).Count(&reservas)
	if reservas > 0 {
		httperr.Conflict(c, "El cliente tiene reservas asociadas y no puede eliminarse.")
		return
	}

	if err := h.db.Delete(&cliente).Error; err != nil {
		httperr.Internal(c, "No se pudo eliminar el cliente.")
		return
	}

	httpresp.Message(c, "Cliente eliminado exitosamente.")
}

func (h *ClienteHandler) Buscar(c *gin.Context) {
	nombre := strings.ToLower(strings.TrimSpace(c.Query("nombre")))
	apellido := strings.ToLower(strings.TrimSpace(c.Query("apellido")))
	documento := strings.TrimSpace(c.Query("documentoIdentidad"))

	q := h.db.Model(&models.Cliente{})

	if nombre != "" {
		q = q.Where("LOWER(nombre) LIKE ?", "%"+nombre+"%")
	}

	if apellido != "" {
		q = q.Where("LOWER(apellido) LIKE ?", "%"+apellido+"%")
	}

	if documento != "" {
		q = q.Where("documento_identidad = ?", documento)
	}

	var clientes []models.Cliente
	if err := q.Order("id ASC").Find(&clientes).Error; err != nil {
		httperr.Internal(c, "Error al buscar clientes.")
		return
	}

	if len(clientes) == 0 {
		httperr.NotFound(c, "No se encontraron clientes que coincidan con los criterios de búsqueda.")
		return
	}

	httpresp.OK(c, clientes)
}
