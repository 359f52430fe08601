// Package apperr は共通エラー定義を提供する。
package apperr

import "errors"

// セッション関連エラー
var (
	// ErrSessionNotFound はセッションが見つからない場合のエラー
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionAlreadyExists は同一加入者のセッションが既に存在する場合のエラー
	ErrSessionAlreadyExists = errors.New("session already exists")
	// ErrSessionTerminated は終了済みセッションへの操作エラー
	ErrSessionTerminated = errors.New("session already terminated")
)

// リモート呼び出し関連エラー
var (
	// ErrAuthorityUnavailable はCredit Authority呼び出し失敗エラー（タイムアウト含む）
	ErrAuthorityUnavailable = errors.New("credit authority unavailable")
	// ErrControllerUnavailable はFlow Controller呼び出し失敗エラー
	ErrControllerUnavailable = errors.New("flow controller unavailable")
)

// ルールカタログ関連エラー
var (
	// ErrRuleNotResolved はルールIDがカタログで解決できない場合のエラー
	ErrRuleNotResolved = errors.New("rule not resolved in catalog")
	// ErrCatalogEmpty はカタログが空の場合の起動エラー
	ErrCatalogEmpty = errors.New("rule catalog is empty")
)

// インフラ関連エラー
var (
	// ErrValkeyConnection はValkey接続エラー
	ErrValkeyConnection = errors.New("valkey connection error")
	// ErrValkeyCommand はValkeyコマンド実行エラー
	ErrValkeyCommand = errors.New("valkey command error")
)

// 内部不変条件エラー
var (
	// ErrInvariantViolation は不変条件違反（同一セッションへの多重更新等）のエラー。
	// 発生した場合は構築上の欠陥であり、該当セッションは安全な終端状態へ強制遷移する。
	ErrInvariantViolation = errors.New("invariant violation")
)
