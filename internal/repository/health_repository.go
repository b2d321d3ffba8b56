package repository

import "context"

// ストアに到達できるかだけを確認する
type HealthChecker interface {
	Ping(ctx context.Context) error
}
