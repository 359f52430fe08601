// Package enforcer はセッションライフサイクルとクレジット執行の中核を提供する。
package enforcer

import (
	"context"

	"github.com/oyaguma3/pcef-enforcer-poc/internal/dto"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_enforcer.go -package=mocks

// SessionEnforcer はセッション執行操作のインターフェースを定義する
type SessionEnforcer interface {
	// CreateSession はセッションを確立する。
	// Credit Authorityへの作成要求は同期、フロー有効化は作成ack後に行う。
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)

	// ReportRuleStats は使用量バッチを受理する。
	// 集計と更新送信は非同期に行われ、呼び出し元にリモート障害は伝播しない。
	ReportRuleStats(ctx context.Context, records []dto.RuleRecord)

	// EndSession は終了シーケンスを開始する。
	// 開始が受理された時点で応答し、完了は非同期に進行する。
	EndSession(ctx context.Context, req *dto.EndSessionRequest) (*dto.EndSessionResponse, error)
}
