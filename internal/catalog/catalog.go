// Package catalog はポリシールールと課金キーの対応表を提供する。
package catalog

// RuleCatalog はルールIDから課金キーを解決する読み取り専用カタログ。
// 起動時にValkeyから一括ロードされ、以降は変更されない。
type RuleCatalog struct {
	keys map[string]uint32
}

// New は指定されたマッピングからカタログを生成する
func New(keys map[string]uint32) *RuleCatalog {
	m := make(map[string]uint32, len(keys))
	for id, key := range keys {
		m[id] = key
	}
	return &RuleCatalog{keys: m}
}

// Resolve はルールIDに対応する課金キーを返す。
// 未登録のルールIDの場合は第2戻り値がfalseになる。
func (c *RuleCatalog) Resolve(ruleID string) (uint32, bool) {
	key, ok := c.keys[ruleID]
	return key, ok
}

// Size は登録済みルール数を返す
func (c *RuleCatalog) Size() int {
	return len(c.keys)
}

// RuleIDs は登録済みの全ルールIDを返す
func (c *RuleCatalog) RuleIDs() []string {
	ids := make([]string, 0, len(c.keys))
	for id := range c.keys {
		ids = append(ids, id)
	}
	return ids
}
