package config

import "time"

// Valkey接続設定
const (
	ValkeyConnectTimeout = 3 * time.Second
	ValkeyCommandTimeout = 2 * time.Second
)

// ルールカタログ設定
const (
	// CatalogKey はルールカタログを保持するValkeyハッシュのキー。
	// field=ルールID、value=課金キー（10進数文字列）
	CatalogKey = "rules:catalog"
)

// リモート呼び出しタイムアウト
const (
	AuthorityRequestTimeout = 3 * time.Second
	FlowRequestTimeout      = 2 * time.Second
)

// Credit Authority向けCircuit Breaker設定
const (
	CBName             = "credit-authority"
	CBMaxRequests      = 1
	CBInterval         = 60 * time.Second
	CBTimeout          = 30 * time.Second
	CBFailureThreshold = 5
)

// サーバーシャットダウン設定
const (
	ShutdownTimeout = 5 * time.Second
)
