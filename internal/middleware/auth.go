package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/azaeldev/gestion-hotel/internal/auth"
	"github.com/azaeldev/gestion-hotel/internal/config"
	"github.com/azaeldev/gestion-hotel/internal/httperr"
)

const (
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthenticated(c, "Falta el encabezado Authorization.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthenticated(c, "Encabezado Authorization inválido.")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			httperr.Unauthenticated(c, "Token inválido o expirado.")
			c.Abort()
			return
		}

		c.Set(ContextUserEmail, claims.Subject)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

// ActorEmail devuelve el sujeto autenticado, o "" en rutas públicas.
func ActorEmail(c *gin.Context) string {
	if v, ok := c.Get(ContextUserEmail); ok {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}
