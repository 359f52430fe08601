package enforcer

import (
	"context"
	"log/slog"

	"github.com/oyaguma3/pcef-enforcer-poc/internal/dto"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/gateway"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/session"
)

// ReportRuleStats は使用量バッチを受理する。
// 呼び出し元へのackは即時で、集計・更新送信は非同期に行う。
// リモート障害は呼び出し元に伝播せず、次の報告契機で再試行される。
func (c *Coordinator) ReportRuleStats(ctx context.Context, records []dto.RuleRecord) {
	traceID := traceFrom(ctx)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.processReport(traceID, records)
	}()
}

// processReport はバッチを集計し、閾値を超えたセッションの更新送信と
// バッチに現れないTERMINATINGセッションの最終報告を起動する。
func (c *Coordinator) processReport(traceID string, records []dto.RuleRecord) {
	aggregated := Aggregate(records, c.catalog)

	for sid, byKey := range aggregated {
		sess, err := c.store.Get(sid)
		if err != nil {
			slog.Warn("usage reported for unknown session, dropping",
				"trace_id", traceID,
				"event_id", "SESSION_UNKNOWN",
				"imsi", c.maskIMSI(sid),
			)
			continue
		}
		c.applyUsage(traceID, sess, byKey)
	}

	// バッチにサブスクライバーが現れないこと自体が信号になる:
	// TERMINATINGセッションのトラフィックはフロー無効化で止まっているため、
	// 残余使用量を終了マーク付きの最終報告として送る。
	for _, sess := range c.store.All() {
		if _, present := aggregated[sess.SubscriberID]; present {
			continue
		}
		c.sendFinalIfTerminating(traceID, sess)
	}
}

// applyUsage は集計済み使用量をセッションの台帳に加算し、
// 報告条件を満たした課金キーの更新送信を起動する。
func (c *Coordinator) applyUsage(traceID string, sess *session.Session, byKey map[uint32]Usage) {
	sess.Lock()
	defer sess.Unlock()

	if sess.State == session.StateTerminated {
		return
	}

	for key, u := range byKey {
		sess.EntryFor(key).AddUsage(u.Tx, u.Rx)
	}

	// 更新送信はACTIVEセッションのみ。セッションあたり同時1件まで。
	if sess.State != session.StateActive || sess.UpdateInFlight {
		return
	}

	var updates []gateway.CreditUsage
	for key, e := range sess.Credits {
		if !e.NeedsReport(c.cfg.UsageReportThreshold) {
			continue
		}
		tx, rx := e.BeginReport()
		updates = append(updates, gateway.CreditUsage{
			ChargingKey: key,
			BytesTx:     tx,
			BytesRx:     rx,
			Exhausted:   e.Exhausted(),
		})
	}
	if len(updates) == 0 {
		return
	}

	sess.UpdateInFlight = true
	req := &gateway.UpdateSessionRequest{
		SubscriberID: sess.SubscriberID,
		Updates:      updates,
	}
	c.spawnUpdate(traceID, sess, req, sess.UpdateGen)
}

// sendFinalIfTerminating はTERMINATINGセッションの全課金キーを
// 終了マーク付きで報告する更新を起動する。
func (c *Coordinator) sendFinalIfTerminating(traceID string, sess *session.Session) {
	sess.Lock()
	defer sess.Unlock()

	if sess.State != session.StateTerminating || sess.UpdateInFlight {
		return
	}

	var updates []gateway.CreditUsage
	for key, e := range sess.Credits {
		if e.Final || e.Reporting {
			continue
		}
		tx, rx := e.BeginReport()
		updates = append(updates, gateway.CreditUsage{
			ChargingKey: key,
			BytesTx:     tx,
			BytesRx:     rx,
			Exhausted:   e.Exhausted(),
			Terminated:  true,
		})
	}
	if len(updates) == 0 {
		return
	}

	sess.UpdateInFlight = true
	req := &gateway.UpdateSessionRequest{
		SubscriberID: sess.SubscriberID,
		Updates:      updates,
	}
	c.spawnUpdate(traceID, sess, req, sess.UpdateGen)
}

// spawnUpdate は更新送信を非同期に起動する。
// genは起動時点の世代番号で、ack適用時に一致しなければ破棄される。
func (c *Coordinator) spawnUpdate(traceID string, sess *session.Session, req *gateway.UpdateSessionRequest, gen uint64) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.sendUpdate(traceID, sess, req, gen)
	}()
}

func (c *Coordinator) sendUpdate(traceID string, sess *session.Session, req *gateway.UpdateSessionRequest, gen uint64) {
	err := c.authority.UpdateSession(asyncCtx(traceID), req)

	sess.Lock()
	defer sess.Unlock()

	// 陳腐化したackは台帳に触れない（終了等で世代が進んだ場合）
	if gen != sess.UpdateGen {
		slog.Warn("stale update ack discarded",
			"trace_id", traceID,
			"event_id", "USAGE_UPDATE_STALE",
			"imsi", c.maskIMSI(sess.SubscriberID),
		)
		return
	}

	sess.UpdateGen++
	sess.UpdateInFlight = false

	if err != nil {
		// 失敗時は未ack使用量を保持したまま送信中状態のみ解除する。
		// 次の報告契機で旧分＋新規分のより大きな値が再送される。
		for _, u := range req.Updates {
			if e, ok := sess.Credits[u.ChargingKey]; ok {
				e.RollbackReport()
			}
		}
		slog.Error("usage update failed, will retry on next report",
			"trace_id", traceID,
			"event_id", "USAGE_UPDATE_ERR",
			"imsi", c.maskIMSI(sess.SubscriberID),
			"error", err.Error(),
		)
		return
	}

	for _, u := range req.Updates {
		if e, ok := sess.Credits[u.ChargingKey]; ok {
			e.CommitReport(0)
			if u.Terminated {
				e.MarkFinal()
			}
		}
	}
	slog.Info("usage update acknowledged",
		"trace_id", traceID,
		"event_id", "USAGE_UPDATE_OK",
		"imsi", c.maskIMSI(sess.SubscriberID),
		"update_count", len(req.Updates),
	)
}
