package handler

import (
	"errors"
	"fmt"
	"net/http"

	"pos/internal/metrics"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// エラーのレスポンスは全部この形
type ErrorResponse struct {
	Message string `json:"message"`
}

// NewErrorHandler は echo の HTTPErrorHandler。
// redact=true なら5xxのメッセージを隠す（ログには残す）。
func NewErrorHandler(redact bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg := http.StatusInternalServerError, err.Error()
		var ee *echo.HTTPError
		if he, ok := usecase.AsHTTPError(err); ok {
			status, msg = he.Status, he.Message
		} else if errors.As(err, &ee) {
			status, msg = ee.Code, fmt.Sprint(ee.Message)
		}

		if status >= http.StatusInternalServerError {
			c.Logger().Errorj(log.JSON{
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				"status":     status,
				"error":      err.Error(),
			})
			if redact {
				msg = "internal error"
			}
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, ErrorResponse{Message: msg})
		}
		if err != nil {
			c.Logger().Error(err)
		}
	}
}

// メトリクスのresultラベル
func resultLabel(err error) string {
	if err == nil {
		return metrics.ResultOK
	}
	he, ok := usecase.AsHTTPError(err)
	if !ok {
		return metrics.ResultError
	}
	switch {
	case he.Status == http.StatusNotFound:
		return metrics.ResultNotFound
	case he.Status < http.StatusInternalServerError:
		return metrics.ResultBadRequest
	default:
		return metrics.ResultError
	}
}
