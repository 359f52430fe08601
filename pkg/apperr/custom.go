package apperr

import "fmt"

// ValidationError はバリデーションエラーを表す。
type ValidationError struct {
	Field   string // エラーが発生したフィールド名
	Message string // エラーメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field=%s, message=%s", e.Field, e.Message)
}

// NewValidationError はValidationErrorを生成する。
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// InvariantError は不変条件違反の詳細を表す。
type InvariantError struct {
	SubscriberID string // 対象セッションの加入者ID
	Reason       string // 違反内容
}

// Error はerrorインターフェースを実装する。
func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation: subscriber=%s, reason=%s",
		e.SubscriberID, e.Reason)
}

// Unwrap はErrInvariantViolationを返し、errors.Isでの判定を可能にする。
func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}

// NewInvariantError はInvariantErrorを生成する。
func NewInvariantError(subscriberID, reason string) *InvariantError {
	return &InvariantError{
		SubscriberID: subscriberID,
		Reason:       reason,
	}
}
