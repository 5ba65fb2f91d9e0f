package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/azaeldev/gestion-hotel/internal/audit"
	"github.com/azaeldev/gestion-hotel/internal/auth"
	"github.com/azaeldev/gestion-hotel/internal/config"
	"github.com/azaeldev/gestion-hotel/internal/httperr"
	"github.com/azaeldev/gestion-hotel/internal/httpresp"
	"github.com/azaeldev/gestion-hotel/internal/middleware"
	"github.com/azaeldev/gestion-hotel/internal/models"
	"github.com/azaeldev/gestion-hotel/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher

	// El chequeo de dominio hace una consulta DNS real; se inyecta para
	// poder reemplazarlo donde no hay red.
	emailDomainValido func(string) bool
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, audit *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{
		db:     db,
		config: cfg,
		audit:  audit,

		emailDomainValido: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Nombre   string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Rol      string `json:"rol" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Email y contraseña son requeridos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var usuario models.Usuario
	if err := h.db.Where("email = ?", email).First(&usuario).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthenticated(c, "Credenciales inválidas.")
			return
		}
		httperr.Internal(c, "Error interno.")
		return
	}

	if !auth.VerifyPassword(req.Password, usuario.PasswordHash) {
		httperr.Unauthenticated(c, "Credenciales inválidas.")
		return
	}

	role, err := auth.ParseRole(usuario.Rol)
	if err != nil {
		httperr.Internal(c, "El usuario tiene un rol inválido.")
		return
	}

	token, err := auth.IssueToken(h.config.JWTSecret, usuario.Email, role)
	if err != nil {
		httperr.Internal(c, "No se pudo generar el token.")
		return
	}

	httpresp.OK(c, gin.H{"token": token})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Nombre, email, contraseña y rol son requeridos.")
		return
	}

	role, err := auth.ParseRole(req.Rol)
	if err != nil {
		httperr.Validation(c, fmt.Sprintf("Rol inválido: %q.", req.Rol))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.emailDomainValido(email) {
		httperr.Validation(c, "El dominio del email no parece ser válido.")
		return
	}

	var count int64
	h.db.Model(&models.Usuario{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "El email ya está registrado.")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Internal(c, "No se pudo procesar la contraseña.")
		return
	}

	usuario := models.Usuario{
		Nombre:       req.Nombre,
		Email:        email,
		PasswordHash: hashed,
		Rol:          string(role),
		Estado:       true,
	}

	if err := h.db.Create(&usuario).Error; err != nil {
		httperr.Internal(c, "No se pudo crear el usuario.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    middleware.ActorEmail(c),
		Action:   "usuario_registrado",
		Entity:   "usuario",
		EntityID: &usuario.ID,
	})

	httpresp.Message(c, fmt.Sprintf("Usuario con rol '%s' registrado exitosamente.", role))
}
