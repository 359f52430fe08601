package enforcer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oyaguma3/pcef-enforcer-poc/internal/credit"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/dto"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/gateway"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/session"
	"github.com/oyaguma3/pcef-enforcer-poc/pkg/apperr"
)

// CreateSession はセッション確立を実行する。
// シーケンス: Authority作成要求（同期）→ セッション登録 →
// フロー有効化 → ACTIVE遷移 → 応答。
// フロー有効化はAuthorityの作成ackより先に実行してはならない。
func (c *Coordinator) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	traceID := traceFrom(ctx)
	sid := req.SubscriberID

	// 既存セッションの確認
	if existing, err := c.store.Get(sid); err == nil {
		existing.Lock()
		state := existing.State
		existing.Unlock()
		if state != session.StateTerminated {
			return nil, apperr.ErrSessionAlreadyExists
		}
	}

	// Authorityへの作成要求（同期、失敗は呼び出し元に返す）
	callCtx := gateway.WithTraceID(ctx, traceID)
	resp, err := c.authority.CreateSession(callCtx, &gateway.CreateSessionRequest{
		SubscriberID: sid,
		APN:          req.APN,
	})
	if err != nil {
		slog.Error("session create rejected by credit authority",
			"trace_id", traceID,
			"event_id", "SESSION_CREATE_ERR",
			"imsi", c.maskIMSI(sid),
			"error", err.Error(),
		)
		return nil, fmt.Errorf("%w: %w", apperr.ErrAuthorityUnavailable, err)
	}

	// セッション構築: カタログで解決できるルールのみ有効化対象とする
	sess := session.NewSession(sid)
	for _, ruleID := range resp.StaticRuleIDs {
		if _, ok := c.catalog.Resolve(ruleID); !ok {
			slog.Warn("static rule not in catalog, excluded from activation",
				"trace_id", traceID,
				"event_id", "RULE_UNRESOLVED",
				"imsi", c.maskIMSI(sid),
				"rule_id", ruleID,
			)
			continue
		}
		sess.ActiveRuleIDs = append(sess.ActiveRuleIDs, ruleID)
	}
	for _, grant := range resp.Credits {
		sess.Credits[grant.ChargingKey] = credit.NewEntry(grant.ChargingKey, grant.GrantedBytes)
	}

	if err := c.store.Put(sess); err != nil {
		return nil, err
	}

	// フロー有効化。失敗しても作成は成立し、次のライフサイクル
	// イベントで現在状態からルール集合が再導出される。
	// 確立中にEndSessionが割り込んでいた場合は有効化をスキップする。
	activated := false
	if len(sess.ActiveRuleIDs) > 0 && c.stateOf(sess) == session.StateCreating {
		if err := c.flows.ActivateFlows(callCtx, &gateway.FlowRequest{
			SubscriberID: sid,
			RuleIDs:      sess.ActiveRuleIDs,
		}); err != nil {
			slog.Error("flow activation failed",
				"trace_id", traceID,
				"event_id", "FLOW_ACTIVATE_ERR",
				"imsi", c.maskIMSI(sid),
				"error", err.Error(),
			)
		} else {
			activated = true
		}
	}

	sess.Lock()
	if sess.State != session.StateCreating {
		// 有効化中にEndSessionが割り込み、終了シーケンスが先行した。
		// TERMINATING/TERMINATEDからACTIVEへ巻き戻してはならない。
		state := sess.State
		sess.Unlock()
		c.abortEstablishment(callCtx, traceID, sess, activated)
		slog.Warn("session torn down during establishment",
			"trace_id", traceID,
			"event_id", "SESSION_CREATE_ABORTED",
			"imsi", c.maskIMSI(sid),
			"state", state.String(),
		)
		return nil, fmt.Errorf("%w: session torn down during establishment", apperr.ErrSessionTerminated)
	}
	sess.State = session.StateActive
	ruleIDs := make([]string, len(sess.ActiveRuleIDs))
	copy(ruleIDs, sess.ActiveRuleIDs)
	sess.Unlock()

	slog.Info("session established",
		"trace_id", traceID,
		"event_id", "SESSION_CREATE_OK",
		"imsi", c.maskIMSI(sid),
		"rule_count", len(ruleIDs),
		"credit_keys", len(resp.Credits),
	)

	return &dto.CreateSessionResponse{
		SubscriberID:  sid,
		State:         session.StateActive.String(),
		ActiveRuleIDs: ruleIDs,
	}, nil
}

// stateOf は現在状態をロック下で読み取る。
func (c *Coordinator) stateOf(sess *session.Session) session.State {
	sess.Lock()
	defer sess.Unlock()
	return sess.State
}

// abortEstablishment は終了シーケンスに追い越された確立処理を後始末する。
// フロー有効化が無効化ackの後に完了していた可能性があるため、
// 有効化済みの場合は補償の無効化を送る。Authorityが閉じたと
// 認識したセッションにフローが残ってはならない。
func (c *Coordinator) abortEstablishment(ctx context.Context, traceID string, sess *session.Session, activated bool) {
	if !activated {
		return
	}
	if err := c.flows.DeactivateFlows(ctx, &gateway.FlowRequest{
		SubscriberID: sess.SubscriberID,
		RuleIDs:      sess.ActiveRuleIDs,
	}); err != nil {
		slog.Error("compensating flow deactivation failed",
			"trace_id", traceID,
			"event_id", "FLOW_DEACTIVATE_ERR",
			"imsi", c.maskIMSI(sess.SubscriberID),
			"error", fmt.Errorf("%w: %w", apperr.ErrControllerUnavailable, err).Error(),
		)
	}
}
