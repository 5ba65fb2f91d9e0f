package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/httpresp"
	"github.com/azaeldev/gestion-hotel/internal/middleware"
	"github.com/azaeldev/gestion-hotel/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	email := middleware.ActorEmail(c)
	if email == "" {
		httperr.Unauthenticated(c, "No hay usuario en el contexto de la petición.")
		return
	}

	var usuario models.Usuario
	if err := h.db.Where("email = ?", email).First(&usuario).Error; err != nil {
		httperr.NotFound(c, "Usuario no encontrado.")
		return
	}

	httpresp.OK(c, usuario)
}
