package enforcer

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/oyaguma3/pcef-enforcer-poc/internal/catalog"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/config"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/gateway"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/logging"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/session"
)

// Coordinator はセッション状態機械とリモート呼び出し順序を司る。
// セッション単位の直列化はセッションロックで行い、
// 異なるサブスクライバーの操作は並行に進行する。
type Coordinator struct {
	store     *session.Store
	catalog   *catalog.RuleCatalog
	authority gateway.CreditAuthority
	flows     gateway.FlowController
	cfg       *config.Config

	// wg は送信中の非同期処理を追跡する（シャットダウン時のドレイン用）
	wg sync.WaitGroup
}

// NewCoordinator は新しいCoordinatorを生成する。
func NewCoordinator(
	store *session.Store,
	cat *catalog.RuleCatalog,
	authority gateway.CreditAuthority,
	flows gateway.FlowController,
	cfg *config.Config,
) *Coordinator {
	return &Coordinator{
		store:     store,
		catalog:   cat,
		authority: authority,
		flows:     flows,
		cfg:       cfg,
	}
}

// Wait は送信中の非同期処理の完了を待つ。
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// maskIMSI はログ出力用のIMSIマスクを適用する。
func (c *Coordinator) maskIMSI(imsi string) string {
	return logging.MaskIMSI(imsi, c.cfg.LogMaskIMSI)
}

// traceFrom は呼び出しコンテキストのTrace IDを引き継ぐ。
// 未設定の場合は新規発行する。
func traceFrom(ctx context.Context) string {
	if traceID, ok := gateway.TraceIDFrom(ctx); ok {
		return traceID
	}
	return uuid.NewString()
}

// asyncCtx は非同期リモート呼び出し用のコンテキストを生成する。
// 呼び出し元のリクエストコンテキストは応答後にキャンセルされるため引き継がない。
func asyncCtx(traceID string) context.Context {
	return gateway.WithTraceID(context.Background(), traceID)
}
