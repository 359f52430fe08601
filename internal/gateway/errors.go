package gateway

import (
	"errors"
	"fmt"
)

// センチネルエラー
var (
	// ErrCircuitOpen はCircuit BreakerがOpen状態の場合のエラー
	ErrCircuitOpen = errors.New("circuit breaker is open")

	// ErrInvalidResponse はリモートからのレスポンスが不正な場合のエラー
	ErrInvalidResponse = errors.New("invalid response from remote")

	// ErrTraceIDMissing はコンテキストにTrace IDが設定されていない場合のエラー
	ErrTraceIDMissing = errors.New("trace id missing in context")
)

// APIError はHTTP APIエラーを表す
type APIError struct {
	Target     string
	StatusCode int
	Message    string
	Details    *ProblemDetails
}

func (e *APIError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s api error: %d %s - %s", e.Target, e.StatusCode, e.Details.Title, e.Details.Detail)
	}
	return fmt.Sprintf("%s api error: %d %s", e.Target, e.StatusCode, e.Message)
}

// IsNotFound はセッション未登録エラーかどうかを判定する
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsBadRequest はリクエスト不正エラーかどうかを判定する
func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == 400
}

// IsServerError はサーバーエラーかどうかを判定する
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// ConnectionError は接続エラーを表す
type ConnectionError struct {
	Target string
	Cause  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s connection error: %v", e.Target, e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}
