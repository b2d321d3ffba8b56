package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError はhandlerにそのまま返せる形のエラー
type HTTPError struct {
	Status  int
	Message string
	Err     error // 元のエラー（ログ用）
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

// DBエラーは元のメッセージのまま500にする
func newDataAccessError(err error) error {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: err.Error(),
		Err:     err,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
