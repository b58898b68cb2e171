package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse is the liveness signal
type HealthResponse struct {
	OK bool `json:"ok"`
}

// Health handles GET /health
//
//	@Summary	Liveness check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/health [get]
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{OK: true})
}
