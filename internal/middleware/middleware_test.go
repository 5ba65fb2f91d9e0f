package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/azaeldev/gestion-hotel/internal/auth"
	"github.com/azaeldev/gestion-hotel/internal/config"
)

func secureRouter(cfg *config.Config, roles ...auth.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	group := r.Group("/")
	group.Use(AuthMiddleware(cfg))
	group.GET("/protegido", RequireRoles(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"actor": ActorEmail(c)})
	})
	return r
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	cfg := &config.Config{JWTSecret: "clave-firma"}
	r := secureRouter(cfg, auth.RoleAdministrador)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "clave-firma"}
	r := secureRouter(cfg, auth.RoleAdministrador)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer no-es-un-jwt")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", w.Code)
	}
}

func TestRequireRolesAllowsMatchingRole(t *testing.T) {
	cfg := &config.Config{JWTSecret: "clave-firma"}
	r := secureRouter(cfg, auth.RoleAdministrador, auth.RoleRecepcionista)

	token, err := auth.IssueToken(cfg.JWTSecret, "recepcion@hotel.com", auth.RoleRecepcionista)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200 (body %s)", w.Code, w.Body.String())
	}
}

func TestRequireRolesForbidsOtherRole(t *testing.T) {
	cfg := &config.Config{JWTSecret: "clave-firma"}
	r := secureRouter(cfg, auth.RoleAdministrador)

	token, err := auth.IssueToken(cfg.JWTSecret, "recepcion@hotel.com", auth.RoleRecepcionista)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("got status %d, want 403", w.Code)
	}
}
