// Package store は設定に応じてストアの実装（gorm / hosted）を組み立てる。
package store

import (
	"context"
	"fmt"

	"pos/internal/config"
	"pos/internal/infra/db"
	"pos/internal/infra/hosted"
	infraRepo "pos/internal/infra/repository"
	repo "pos/internal/repository"
)

// Store はプロセスで1つだけ作り、終了時に1回だけ Close する
type Store struct {
	Products repo.ProductRepository
	Tx       repo.TransactionManager
	Health   repo.HealthChecker

	closeFn func() error
}

func Open(ctx context.Context, cfg config.Config) (*Store, error) {
	var s *Store

	switch cfg.StoreBackend {
	case config.BackendHosted:
		c := hosted.NewClient(cfg.HostedURL, cfg.HostedKey, cfg.HostedTimeout)
		s = &Store{
			Products: hosted.NewProductRESTRepository(c),
			Tx:       hosted.NewTxManagerREST(c),
			Health:   c,
			closeFn: func() error {
				c.CloseIdleConnections()
				return nil
			},
		}
	default:
		gdb, err := db.Connect(cfg)
		if err != nil {
			return nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		s = &Store{
			Products: infraRepo.NewProductGormRepository(gdb),
			Tx:       infraRepo.NewTxManagerGorm(gdb),
			Health:   infraRepo.NewHealthGormRepository(gdb),
			closeFn:  sqlDB.Close,
		}
	}

	//起動時に疎通確認（失敗したら起動しない）
	if err := s.Health.Ping(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("ping %s store: %w", cfg.StoreBackend, err)
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.closeFn == nil {
		return nil
	}
	err := s.closeFn()
	s.closeFn = nil
	return err
}
