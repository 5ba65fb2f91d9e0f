package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Message responde confirmaciones del estilo "…exitosamente.".
func Message(c *gin.Context, mensaje string) {
	c.JSON(http.StatusOK, gin.H{"mensaje": mensaje})
}
