package dto

// CreateSessionResponse はセッション確立レスポンスを表す。
type CreateSessionResponse struct {
	SubscriberID  string   `json:"subscriber_id"`
	State         string   `json:"state"`
	ActiveRuleIDs []string `json:"active_rule_ids"`
}

// EndSessionResponse はセッション終了レスポンスを表す。
// 終了シーケンスは非同期に進行するため、受理時点の状態を返す。
type EndSessionResponse struct {
	SubscriberID string `json:"subscriber_id"`
	State        string `json:"state"`
}

// HealthResponse はヘルスチェックレスポンスを表す。
type HealthResponse struct {
	Status string `json:"status"`
}
