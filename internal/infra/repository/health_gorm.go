package repository

import (
	"context"

	"gorm.io/gorm"
)

type HealthGormRepository struct {
	db *gorm.DB
}

func NewHealthGormRepository(db *gorm.DB) *HealthGormRepository {
	return &HealthGormRepository{db: db}
}

func (r *HealthGormRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
