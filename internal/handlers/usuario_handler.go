package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/azaeldev/gestion-hotel/internal/auth"
	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/httpresp"
	"github.com/azaeldev/gestion-hotel/internal/models"
)

type UsuarioHandler struct {
	db *gorm.DB
}

func NewUsuarioHandler(db *gorm.DB) *UsuarioHandler {
	return &UsuarioHandler{db: db}
}

// --------- Requests ---------

type UpdateUsuarioRequest struct {
	Nombre *string `json:"nombre,omitempty"`
	Rol    *string `json:"rol,omitempty"`
	Estado *bool   `json:"estado,omitempty"`
}

// --------- Handlers ---------

func (h *UsuarioHandler) List(c *gin.Context) {
	var usuarios []models.Usuario
	if err := h.db.Order("id ASC").Find(&usuarios).Error; err != nil {
		httperr.Internal(c, "Error al listar usuarios.")
		return
	}

	httpresp.OK(c, usuarios)
}

func (h *UsuarioHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var usuario models.Usuario
	if err := h.db.First(&usuario, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, fmt.Sprintf("Usuario con ID %s no encontrado.", id))
		return
	}

	httpresp.OK(c, usuario)
}

func (h *UsuarioHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var usuario models.Usuario
	if err := h.db.First(&usuario, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, fmt.Sprintf("Usuario con ID %s no encontrado.", id))
		return
	}

	var req UpdateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Cuerpo de la petición inválido.")
		return
	}

	if req.Nombre != nil {
		usuario.Nombre = *req.Nombre
	}
	if req.Rol != nil {
		role, err := auth.ParseRole(*req.Rol)
		if err != nil {
			httperr.Validation(c, fmt.Sprintf("Rol inválido: %q.", *req.Rol))
			return
		}
		usuario.Rol = string(role)
	}
	if req.Estado != nil {
		usuario.Estado = *req.Estado
	}

	now := time.Now()
	usuario.ActualizadoEn = &now

	if err := h.db.Save(&usuario).Error; err != nil {
		httperr.Internal(c, "No se pudo actualizar el usuario.")
		return
	}

	httpresp.Message(c, "Usuario actualizado exitosamente.")
}

func (h *UsuarioHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var usuario models.Usuario
	if err := h.db.First(&usuario, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, fmt.Sprintf("Usuario con ID %s no encontrado.", id))
		return
	}

	if err := h.db.Delete(&usuario).Error; err != nil {
		httperr.Internal(c, "No se pudo eliminar el usuario.")
		return
	}

	httpresp.Message(c, "Usuario eliminado exitosamente.")
}
