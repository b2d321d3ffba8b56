package hosted

import (
	"context"
	"errors"
	"fmt"

	repo "pos/internal/repository"
)

// unitOfWork は WithinTx の中で作った取引IDを覚えておく
type unitOfWork struct {
	created []int64
}

type txReposREST struct {
	orders     repo.OrderRepository
	orderLines repo.OrderLineRepository
}

func (r *txReposREST) Orders() repo.OrderRepository         { return r.orders }
func (r *txReposREST) OrderLines() repo.OrderLineRepository { return r.orderLines }

// TxManagerREST はREST APIにトランザクションが無いので、失敗時に補償削除する。
// 取引の登録から削除までの間は、途中の行が他から見える。
// 取引POSTの応答が取れなかった場合（タイムアウト等）はIDが分からず削除できない。
// そのときは OrderRESTRepository がキー項目をエラーログに出す。
type TxManagerREST struct {
	c *Client
}

func NewTxManagerREST(c *Client) *TxManagerREST {
	return &TxManagerREST{c: c}
}

func (tm *TxManagerREST) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	uow := &unitOfWork{}
	r := &txReposREST{
		orders:     &OrderRESTRepository{c: tm.c, uow: uow},
		orderLines: &OrderLineRESTRepository{c: tm.c},
	}

	err := fn(r)
	if err == nil {
		return nil
	}

	//リクエストがキャンセルされていても削除は最後まで行う
	cctx := context.WithoutCancel(ctx)
	errs := []error{err}
	for i := len(uow.created) - 1; i >= 0; i-- {
		if derr := tm.c.deleteOrder(cctx, uow.created[i]); derr != nil {
			errs = append(errs, fmt.Errorf("compensate order %d: %w", uow.created[i], derr))
		}
	}
	if len(errs) == 1 {
		return err
	}
	return errors.Join(errs...)
}
