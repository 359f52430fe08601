// Package dto はリクエスト・レスポンスのデータ転送オブジェクトを定義する。
package dto

// CreateSessionRequest はセッション確立リクエストを表す。
type CreateSessionRequest struct {
	SubscriberID string `json:"subscriber_id" binding:"required"`
	APN          string `json:"apn,omitempty"`
}

// RuleRecord は1ルール分の使用量レコードを表す。
// BytesTx/BytesRxはルール有効化以降の累積値ではなく、前回報告からの増分。
type RuleRecord struct {
	SubscriberID string `json:"subscriber_id" binding:"required"`
	RuleID       string `json:"rule_id" binding:"required"`
	BytesTx      uint64 `json:"bytes_tx"`
	BytesRx      uint64 `json:"bytes_rx"`
}

// RuleStatsRequest はデータパスからの使用量バッチ報告を表す。
type RuleStatsRequest struct {
	Records []RuleRecord `json:"records"`
}

// EndSessionRequest はセッション終了リクエストを表す。
type EndSessionRequest struct {
	SubscriberID string `json:"subscriber_id" binding:"required"`
}
