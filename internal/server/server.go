package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pos/internal/config"
	"pos/internal/handler"
	"pos/internal/metrics"
	appmw "pos/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

// New はミドルウェアとルートを登録した *echo.Echo を返す
func New(cfg config.Config, h Handlers, m *metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(LogLevel(cfg.LogLevel))
	e.HTTPErrorHandler = handler.NewErrorHandler(cfg.RedactErrors)

	e.Use(echomw.Recover())
	e.Use(appmw.RequestID())
	e.Use(appmw.RequestLogger())
	e.Use(appmw.CORS(cfg.CORSAllowOrigins))

	RegisterRoutes(e, h)
	if cfg.PrometheusEnabled {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}
	return e
}

// Start はctxが終わるまで待ってから graceful shutdown する
func Start(ctx context.Context, e *echo.Echo, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		e.Logger.Infof("listening on %s", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func LogLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
