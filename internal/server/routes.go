package server

import (
	"pos/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Product *handler.ProductHandler
	Order   *handler.OrderHandler
	Health  *handler.HealthHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	h.Product.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.Health.RegisterRoutes(e)
}
