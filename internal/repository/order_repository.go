package repository

import (
	"context"

	"pos/internal/domain/model"
)

type OrderRepository interface {
	// 採番された取引IDを返す
	Create(ctx context.Context, order model.Order) (int64, error)
}
