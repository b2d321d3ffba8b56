package handler

import (
	"fmt"
	"net/http"

	"pos/internal/metrics"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc      *usecase.OrderUsecase
	metrics *metrics.Metrics
}

func NewOrderHandler(uc *usecase.OrderUsecase, m *metrics.Metrics) *OrderHandler {
	return &OrderHandler{uc: uc, metrics: m}
}

// 必須項目は「JSONに含まれているか」で判定するのでポインタで受ける
type OrderLineRequest struct {
	DetailID *int64  `json:"detailId"`
	Code     *string `json:"code"`
	Name     *string `json:"name"`
	Price    *int64  `json:"price"`
}

type OrderCreateRequest struct {
	Items       []OrderLineRequest `json:"items"`
	TotalAmount *int64             `json:"totalAmount"`
	EmpCd       *string            `json:"empCd"`
	StoreCd     *string            `json:"storeCd"`
	PosNo       *string            `json:"posNo"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/order", h.create)
}

func (h *OrderHandler) create(c echo.Context) error {
	out, err := h.register(c)
	h.metrics.OrderRegistered(resultLabel(err))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) register(c echo.Context) (usecase.RegisterOrderOutput, error) {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return usecase.RegisterOrderOutput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	in, err := req.toInput()
	if err != nil {
		return usecase.RegisterOrderOutput{}, err
	}
	return h.uc.RegisterOrder(c.Request().Context(), in)
}

func (r OrderCreateRequest) toInput() (usecase.RegisterOrderInput, error) {
	if r.TotalAmount == nil {
		return usecase.RegisterOrderInput{}, usecase.NewHTTPError(http.StatusBadRequest, "totalAmount is required")
	}

	items := make([]usecase.OrderLineInput, 0, len(r.Items))
	for i, it := range r.Items {
		missing := ""
		switch {
		case it.DetailID == nil:
			missing = "detailId"
		case it.Code == nil:
			missing = "code"
		case it.Name == nil:
			missing = "name"
		case it.Price == nil:
			missing = "price"
		}
		if missing != "" {
			return usecase.RegisterOrderInput{}, usecase.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("items[%d].%s is required", i, missing))
		}

		items = append(items, usecase.OrderLineInput{
			DetailID: *it.DetailID,
			Code:     *it.Code,
			Name:     *it.Name,
			Price:    *it.Price,
		})
	}

	return usecase.RegisterOrderInput{
		Items:       items,
		TotalAmount: *r.TotalAmount,
		EmpCd:       r.EmpCd,
		StoreCd:     r.StoreCd,
		PosNo:       r.PosNo,
	}, nil
}
