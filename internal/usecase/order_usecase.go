package usecase

import (
	"context"
	"fmt"
	"time"

	"pos/internal/domain/model"
	repo "pos/internal/repository"
)

const OrderRegisteredMessage = "order registered"

type Clock interface {
	Now() time.Time
}

type OrderUsecase struct {
	tx    repo.TransactionManager
	clock Clock
}

func NewOrderUsecase(tx repo.TransactionManager, clock Clock) *OrderUsecase {
	return &OrderUsecase{tx: tx, clock: clock}
}

type OrderLineInput struct {
	DetailID int64
	Code     string
	Name     string
	Price    int64
}

// nilのコードは既定値になる。空文字はそのまま登録する
type RegisterOrderInput struct {
	Items       []OrderLineInput
	TotalAmount int64
	EmpCd       *string
	StoreCd     *string
	PosNo       *string
}

type RegisterOrderOutput struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

// RegisterOrder は取引1行と明細len(Items)行を1つのトランザクションで登録する。
// 金額の再計算や合計チェックはしない。
func (u *OrderUsecase) RegisterOrder(ctx context.Context, in RegisterOrderInput) (RegisterOrderOutput, error) {
	order := model.Order{
		EmpCd:    withDefault(in.EmpCd, model.DefaultEmpCd),
		StoreCd:  withDefault(in.StoreCd, model.DefaultStoreCd),
		PosNo:    withDefault(in.PosNo, model.DefaultPosNo),
		TotalAmt: in.TotalAmount,
	}

	var orderID int64
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//日時はクライアントからもらわない
		order.Datetime = u.clock.Now().UTC()

		id, err := r.Orders().Create(ctx, order)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		//渡された順に1行ずつ
		for _, it := range in.Items {
			line := model.OrderLine{
				OrderID:  id,
				DetailID: it.DetailID,
				Code:     it.Code,
				Name:     it.Name,
				Price:    it.Price,
			}
			if err := r.OrderLines().Create(ctx, line); err != nil {
				return fmt.Errorf("insert order line %d: %w", it.DetailID, err)
			}
		}

		orderID = id
		return nil
	})
	if err != nil {
		return RegisterOrderOutput{}, newDataAccessError(err)
	}

	return RegisterOrderOutput{Message: OrderRegisteredMessage, OrderID: orderID}, nil
}

func withDefault(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}
