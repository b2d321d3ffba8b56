package repository

import (
	"context"

	"pos/internal/domain/model"

	"gorm.io/gorm"
)

type OrderLineGormRepository struct {
	db *gorm.DB
}

func NewOrderLineGormRepository(db *gorm.DB) *OrderLineGormRepository {
	return &OrderLineGormRepository{db: db}
}

func (r *OrderLineGormRepository) Create(ctx context.Context, line model.OrderLine) error {
	return r.db.WithContext(ctx).Create(&line).Error
}
