package hosted

import (
	"context"
	"net/http"
	"net/url"

	"pos/internal/domain/model"
	repo "pos/internal/repository"
)

type ProductRESTRepository struct {
	c *Client
}

func NewProductRESTRepository(c *Client) *ProductRESTRepository {
	return &ProductRESTRepository{c: c}
}

// code=eq.{code}&limit=1。並び順は指定しない
func (r *ProductRESTRepository) FindByCode(ctx context.Context, code string) (model.Product, error) {
	q := url.Values{}
	q.Set("select", "code,name,price")
	q.Set("code", "eq."+code)
	q.Set("limit", "1")

	var rows []model.Product
	if err := r.c.do(ctx, http.MethodGet, productTable, q, nil, "", &rows); err != nil {
		return model.Product{}, err
	}
	if len(rows) == 0 {
		return model.Product{}, repo.ErrNotFound
	}
	return rows[0], nil
}
