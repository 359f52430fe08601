package gateway

// CreateSessionRequest はセッション作成要求を表す
type CreateSessionRequest struct {
	SubscriberID string `json:"subscriber_id"`
	APN          string `json:"apn,omitempty"`
}

// CreditGrant は1課金キー分の付与クォータを表す
type CreditGrant struct {
	ChargingKey  uint32 `json:"charging_key"`
	GrantedBytes uint64 `json:"granted_bytes"`
}

// CreateSessionResponse はセッション作成応答を表す
type CreateSessionResponse struct {
	StaticRuleIDs []string      `json:"static_rule_ids"`
	Credits       []CreditGrant `json:"credits"`
}

// CreditUsage は1課金キー分の使用量報告を表す
type CreditUsage struct {
	ChargingKey uint32 `json:"charging_key"`
	BytesTx     uint64 `json:"bytes_tx"`
	BytesRx     uint64 `json:"bytes_rx"`
	Exhausted   bool   `json:"exhausted"`
	Terminated  bool   `json:"terminated"`
}

// UpdateSessionRequest は使用量報告要求を表す
type UpdateSessionRequest struct {
	SubscriberID string        `json:"subscriber_id"`
	Updates      []CreditUsage `json:"updates"`
}

// TerminateSessionRequest はセッション終了要求を表す
type TerminateSessionRequest struct {
	SubscriberID string `json:"subscriber_id"`
}

// FlowRequest はフロー有効化・無効化要求を表す
type FlowRequest struct {
	SubscriberID string   `json:"subscriber_id"`
	RuleIDs      []string `json:"rule_ids"`
}

// ProblemDetails はRFC 7807エラーレスポンスを表す
type ProblemDetails struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}
