package handler

import (
	"net/http"

	repo "pos/internal/repository"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type HealthHandler struct {
	store  repo.HealthChecker
	redact bool
}

// redact=true なら503の理由を返さない（ログには残す）
func NewHealthHandler(store repo.HealthChecker, redact bool) *HealthHandler {
	return &HealthHandler{store: store, redact: redact}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.check)
}

func (h *HealthHandler) check(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		c.Logger().Errorj(log.JSON{
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			"status":     http.StatusServiceUnavailable,
			"error":      err.Error(),
		})
		msg := err.Error()
		if h.redact {
			msg = "internal error"
		}
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Message: msg})
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
