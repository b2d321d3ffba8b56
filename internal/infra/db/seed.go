package db

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"pos/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DecodeProducts は [{"code","name","price"}] 形式のJSONを読む
func DecodeProducts(r io.Reader) ([]model.Product, error) {
	var products []model.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	seen := make(map[string]bool, len(products))
	for i := range products {
		products[i].Code = strings.TrimSpace(products[i].Code)
		if products[i].Code == "" {
			return nil, fmt.Errorf("products[%d].code is required", i)
		}
		if seen[products[i].Code] {
			return nil, fmt.Errorf("products[%d].code %q is duplicated", i, products[i].Code)
		}
		seen[products[i].Code] = true
	}
	return products, nil
}

// SeedProducts は商品マスタを code で upsert する
func SeedProducts(ctx context.Context, gdb *gorm.DB, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}
	return gdb.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "price"}),
		}).
		Create(&products).Error
}
