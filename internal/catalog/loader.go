package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/oyaguma3/pcef-enforcer-poc/internal/config"
	"github.com/oyaguma3/pcef-enforcer-poc/pkg/apperr"
)

// Load はValkeyハッシュからルールカタログを読み込む。
// field=ルールID、value=課金キー（10進数文字列）として解釈する。
// 不正なエントリは警告ログを出力してスキップする。
// 有効なエントリが1件もない場合はErrCatalogEmptyを返す。
func Load(ctx context.Context, client *redis.Client, logger *slog.Logger) (*RuleCatalog, error) {
	entries, err := client.HGetAll(ctx, config.CatalogKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load rule catalog: %v", apperr.ErrValkeyCommand, err)
	}

	keys := make(map[string]uint32, len(entries))
	for ruleID, raw := range entries {
		key, perr := strconv.ParseUint(raw, 10, 32)
		if perr != nil {
			logger.Warn("invalid charging key in rule catalog, skipping",
				slog.String("event_id", "CATALOG_ENTRY_INVALID"),
				slog.String("rule_id", ruleID),
				slog.String("value", raw),
			)
			continue
		}
		keys[ruleID] = uint32(key)
	}

	if len(keys) == 0 {
		return nil, apperr.ErrCatalogEmpty
	}

	logger.Info("rule catalog loaded",
		slog.String("event_id", "CATALOG_LOADED"),
		slog.Int("rule_count", len(keys)),
	)
	return New(keys), nil
}
