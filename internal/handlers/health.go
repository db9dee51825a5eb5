package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles GET /, the liveness probe.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "shareSurplus Server is Running")
}
