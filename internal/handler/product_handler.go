package handler

import (
	"net/http"

	"pos/internal/metrics"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /product の公開API
type ProductHandler struct {
	uc      *usecase.ProductUsecase
	metrics *metrics.Metrics
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, m *metrics.Metrics) *ProductHandler {
	return &ProductHandler{uc: uc, metrics: m}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/product", h.getByCode)
}

// GET /product?code=...
func (h *ProductHandler) getByCode(c echo.Context) error {
	out, err := h.uc.GetProductByCode(c.Request().Context(), c.QueryParam("code"))
	h.metrics.ProductLookup(resultLabel(err))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
