package repository

import (
	"context"

	"pos/internal/domain/model"
)

type OrderLineRepository interface {
	Create(ctx context.Context, line model.OrderLine) error
}
