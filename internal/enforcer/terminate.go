package enforcer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oyaguma3/pcef-enforcer-poc/internal/dto"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/gateway"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/session"
	"github.com/oyaguma3/pcef-enforcer-poc/pkg/apperr"
)

// EndSession は終了シーケンスを開始する。
// 開始が受理された時点で応答し、フロー無効化→Authority終了通知は
// 非同期に進行する。既にTERMINATINGのセッションに対する再呼び出しは
// 停止していたシーケンスを再実行する。
func (c *Coordinator) EndSession(ctx context.Context, req *dto.EndSessionRequest) (*dto.EndSessionResponse, error) {
	traceID := traceFrom(ctx)
	sid := req.SubscriberID

	sess, err := c.store.Get(sid)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	if sess.State == session.StateTerminated {
		sess.Unlock()
		return nil, fmt.Errorf("%w: %w", apperr.ErrSessionNotFound, apperr.ErrSessionTerminated)
	}
	sess.State = session.StateTerminating
	sess.Unlock()

	slog.Info("session termination initiated",
		"trace_id", traceID,
		"event_id", "SESSION_END_ACCEPTED",
		"imsi", c.maskIMSI(sid),
	)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.runTermination(traceID, sess)
	}()

	return &dto.EndSessionResponse{
		SubscriberID: sid,
		State:        session.StateTerminating.String(),
	}, nil
}

// runTermination は終了シーケンスを実行する。
// フロー無効化のackを得てからAuthorityへ終了通知を送る順序は
// 絶対不変条件: Authorityが閉じたと認識したセッションに
// トラフィックが転送されてはならない。
// いずれかの段で失敗した場合はTERMINATINGのまま残り、
// 次のEndSession呼び出しで再実行される。
func (c *Coordinator) runTermination(traceID string, sess *session.Session) {
	ctx := asyncCtx(traceID)
	sid := sess.SubscriberID

	sess.Lock()
	needDeactivate := !sess.FlowsDeactivated
	ruleIDs := make([]string, len(sess.ActiveRuleIDs))
	copy(ruleIDs, sess.ActiveRuleIDs)
	sess.Unlock()

	if needDeactivate {
		if err := c.flows.DeactivateFlows(ctx, &gateway.FlowRequest{
			SubscriberID: sid,
			RuleIDs:      ruleIDs,
		}); err != nil {
			werr := fmt.Errorf("%w: %w", apperr.ErrControllerUnavailable, err)
			slog.Error("flow deactivation failed, termination stalled",
				"trace_id", traceID,
				"event_id", "FLOW_DEACTIVATE_ERR",
				"imsi", c.maskIMSI(sid),
				"error", werr.Error(),
			)
			return
		}
		sess.Lock()
		sess.FlowsDeactivated = true
		sess.Unlock()
	}

	sess.Lock()
	if !sess.FlowsDeactivated {
		// 順序不変条件が破れた場合はセッションを安全な最終状態に落とす
		ierr := apperr.NewInvariantError(sid, "terminate attempted before flow deactivation")
		slog.Error("termination ordering violated, forcing session terminated",
			"trace_id", traceID,
			"event_id", "INVARIANT_VIOLATION",
			"imsi", c.maskIMSI(sid),
			"error", ierr.Error(),
		)
		sess.State = session.StateTerminated
		sess.UpdateGen++
		sess.Unlock()
		c.store.Delete(sid)
		return
	}
	if sess.TerminateIssued {
		sess.Unlock()
		return
	}
	sess.TerminateIssued = true
	sess.Unlock()

	if err := c.authority.TerminateSession(ctx, &gateway.TerminateSessionRequest{SubscriberID: sid}); err != nil {
		slog.Error("terminate notification failed, termination stalled",
			"trace_id", traceID,
			"event_id", "SESSION_TERMINATE_ERR",
			"imsi", c.maskIMSI(sid),
			"error", err.Error(),
		)
		sess.Lock()
		sess.TerminateIssued = false
		sess.Unlock()
		return
	}

	sess.Lock()
	sess.State = session.StateTerminated
	// 送信中の使用量ackがあれば陳腐化させる
	sess.UpdateGen++
	sess.Unlock()
	c.store.Delete(sid)

	slog.Info("session terminated",
		"trace_id", traceID,
		"event_id", "SESSION_TERMINATED",
		"imsi", c.maskIMSI(sid),
	)
}
