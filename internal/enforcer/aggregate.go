package enforcer

import (
	"log/slog"

	"github.com/oyaguma3/pcef-enforcer-poc/internal/catalog"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/dto"
	"github.com/oyaguma3/pcef-enforcer-poc/pkg/apperr"
)

// Usage は課金キー単位の集計済み使用量
type Usage struct {
	Tx uint64
	Rx uint64
}

// Aggregate はルールレコードのバッチをサブスクライバー×課金キー単位に畳み込む。
// 純粋な決定的処理で、同一バッチからは常に同一の結果が得られる。
// カタログで解決できないルールのレコードは警告を出力して破棄する。
func Aggregate(records []dto.RuleRecord, cat *catalog.RuleCatalog) map[string]map[uint32]Usage {
	result := make(map[string]map[uint32]Usage)
	for _, rec := range records {
		key, ok := cat.Resolve(rec.RuleID)
		if !ok {
			slog.Warn("rule id not in catalog, dropping record",
				"event_id", "RULE_UNRESOLVED",
				"rule_id", rec.RuleID,
				"error", apperr.ErrRuleNotResolved.Error(),
			)
			continue
		}
		byKey, ok := result[rec.SubscriberID]
		if !ok {
			byKey = make(map[uint32]Usage)
			result[rec.SubscriberID] = byKey
		}
		u := byKey[key]
		u.Tx += rec.BytesTx
		u.Rx += rec.BytesRx
		byKey[key] = u
	}
	return result
}
