package v1

import (
	"context"
	"net/http"

	"go-jobmarket-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports per-dependency status plus an overall "status" key.
type HealthChecker interface {
	Check(ctx context.Context) map[string]string
}

type HealthHandler struct {
	checker HealthChecker
}

func NewHealthHandler(public *gin.RouterGroup, checker HealthChecker) {
	handler := &HealthHandler{checker: checker}
	public.GET("/health", handler.Health)
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if h.checker == nil {
		response.Success(c, http.StatusOK, "System operational", nil)
		return
	}

	result := h.checker.Check(c.Request.Context())
	if result["status"] != "ok" {
		response.Success(c, http.StatusServiceUnavailable, "System degraded", result)
		return
	}
	response.Success(c, http.StatusOK, "System operational", result)
}
