package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pos/internal/config"
	"pos/internal/handler"
	"pos/internal/infra/store"
	"pos/internal/metrics"
	"pos/internal/server"
	"pos/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//ローカル開発時だけ .env を読む（無ければ環境変数だけ使う）
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	//設定は起動時に全部チェック
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.SetLevel(server.LogLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//ストア接続（postgres / sqlite / hosted）
	st, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Errorf("close store: %v", err)
		}
	}()

	//Usecase生成
	productUC := usecase.NewProductUsecase(st.Products)
	orderUC := usecase.NewOrderUsecase(st.Tx, &realClock{})

	//Handler生成
	m := metrics.New()
	e := server.New(cfg, server.Handlers{
		Product: handler.NewProductHandler(productUC, m),
		Order:   handler.NewOrderHandler(orderUC, m),
		Health:  handler.NewHealthHandler(st.Health, cfg.RedactErrors),
	}, m)

	//Server起動
	log.Infof("store backend: %s", cfg.StoreBackend)
	if err := server.Start(ctx, e, ":"+cfg.Port); err != nil {
		log.Errorf("server: %v", err)
		stop()
		_ = st.Close()
		os.Exit(1)
	}
}
