package hosted

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"pos/internal/domain/model"

	"github.com/labstack/gommon/log"
)

type OrderRESTRepository struct {
	c   *Client
	uow *unitOfWork
}

func (r *OrderRESTRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	//送信したらキャンセルされてもIDを受け取るまで待つ（上限はHOSTED_TIMEOUT）
	//採番されたIDを受け取るため return=representation
	var rows []model.Order
	err := r.c.do(context.WithoutCancel(ctx), http.MethodPost, orderTable, nil, order, "return=representation", &rows)
	if err == nil && (len(rows) == 0 || rows[0].ID == 0) {
		err = errors.New("hosted store returned no order id")
	}
	if err != nil {
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			//登録されたか分からない。手で突き合わせられるようにキー項目を残す
			logUnknownOrder(order, err)
		}
		return 0, err
	}

	if r.uow != nil {
		r.uow.created = append(r.uow.created, rows[0].ID)
	}
	return rows[0].ID, nil
}

func logUnknownOrder(order model.Order, err error) {
	log.Errorj(log.JSON{
		"event":     "hosted_order_outcome_unknown",
		"datetime":  order.Datetime.Format(time.RFC3339Nano),
		"emp_cd":    order.EmpCd,
		"store_cd":  order.StoreCd,
		"pos_no":    order.PosNo,
		"total_amt": order.TotalAmt,
		"error":     err.Error(),
	})
}

type OrderLineRESTRepository struct {
	c *Client
}

func (r *OrderLineRESTRepository) Create(ctx context.Context, line model.OrderLine) error {
	return r.c.do(ctx, http.MethodPost, orderLineTable, nil, line, "return=minimal", nil)
}

// deleteOrder は明細→取引の順に消す
func (c *Client) deleteOrder(ctx context.Context, orderID int64) error {
	q := url.Values{}
	q.Set("trd_id", "eq."+strconv.FormatInt(orderID, 10))

	if err := c.do(ctx, http.MethodDelete, orderLineTable, q, nil, "", nil); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, orderTable, q, nil, "", nil)
}
