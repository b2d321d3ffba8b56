package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	repo "pos/internal/repository"
)

const ProductNotFoundMessage = "product not found"

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// GET /product の出力（codeは返さない）
type ProductOutput struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

func (u *ProductUsecase) GetProductByCode(ctx context.Context, code string) (ProductOutput, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "code is required")
	}

	p, err := u.productRepo.FindByCode(ctx, code)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductOutput{}, NewHTTPError(http.StatusNotFound, ProductNotFoundMessage)
	}
	if err != nil {
		return ProductOutput{}, newDataAccessError(err)
	}

	return ProductOutput{Name: p.Name, Price: p.Price}, nil
}
