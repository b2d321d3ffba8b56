package repository

import (
	"context"
	"errors"

	"pos/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品マスタの参照だけを約束。
type ProductRepository interface {
	// code は完全一致。該当なしは ErrNotFound
	FindByCode(ctx context.Context, code string) (model.Product, error)
}
