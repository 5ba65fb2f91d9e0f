package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/azaeldev/gestion-hotel/internal/auth"
	"github.com/azaeldev/gestion-hotel/internal/httperr"
)

// RequireRoles solo deja pasar peticiones cuyo rol (puesto en contexto por
// AuthMiddleware) esté entre los permitidos.
func RequireRoles(allowed ...auth.Role) gin.HandlerFunc {
	allowedSet := make(map[auth.Role]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		v, ok := c.Get(ContextUserRole)
		if !ok {
			httperr.Unauthenticated(c, "No hay rol en el contexto de la petición.")
			c.Abort()
			return
		}

		role, ok := v.(auth.Role)
		if !ok {
			httperr.Unauthenticated(c, "No hay rol en el contexto de la petición.")
			c.Abort()
			return
		}

		if _, ok := allowedSet[role]; !ok {
			httperr.Forbidden(c, "El rol del usuario no permite esta operación.")
			c.Abort()
			return
		}

		c.Next()
	}
}
