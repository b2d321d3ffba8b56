package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Orders() OrderRepository
	OrderLines() OrderLineRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// fn がエラーを返したら、fn の中で書いた行は残らない。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
