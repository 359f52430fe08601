// Package gateway はリモートコラボレーターとの通信クライアントを提供する。
package gateway

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_gateway.go -package=mocks

// CreditAuthority はクレジット管理局との通信インターフェースを定義する
type CreditAuthority interface {
	// CreateSession はセッション作成を要求し、初期ルールと付与クォータを取得する
	CreateSession(ctx context.Context, req *CreateSessionRequest) (*CreateSessionResponse, error)

	// UpdateSession は使用量報告を送信する
	UpdateSession(ctx context.Context, req *UpdateSessionRequest) error

	// TerminateSession はセッション終了を通知する
	TerminateSession(ctx context.Context, req *TerminateSessionRequest) error
}

// FlowController はデータパスのフロー制御インターフェースを定義する
type FlowController interface {
	// ActivateFlows はサブスクライバーのフローを有効化する
	ActivateFlows(ctx context.Context, req *FlowRequest) error

	// DeactivateFlows はサブスクライバーのフローを無効化する
	DeactivateFlows(ctx context.Context, req *FlowRequest) error
}
