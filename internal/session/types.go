// Package session はサブスクライバーセッションの状態モデルと格納を提供する。
package session

import (
	"sync"

	"github.com/oyaguma3/pcef-enforcer-poc/internal/credit"
)

// State はセッションのライフサイクル状態
type State int

const (
	// StateCreating はCredit Authorityへの作成要求中
	StateCreating State = iota
	// StateActive はフロー有効化済みで使用量を収集中
	StateActive
	// StateTerminating は終了シーケンス実行中
	StateTerminating
	// StateTerminated は終了完了（最終状態）
	StateTerminated
)

// String はログ出力用の状態名を返す
func (s State) String() string {
	switch s {
	case StateCreating:
		return "CREATING"
	case StateActive:
		return "ACTIVE"
	case StateTerminating:
		return "TERMINATING"
	case StateTerminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

// Session は1サブスクライバー分のセッション状態。
// 全フィールドはmuを保持した状態でのみ読み書きすること。
type Session struct {
	mu sync.Mutex

	// SubscriberID はIMSI
	SubscriberID string

	// State は現在のライフサイクル状態
	State State

	// Credits は課金キーごとのクレジット台帳
	Credits map[uint32]*credit.Entry

	// ActiveRuleIDs は有効化対象の静的ルールID一覧
	ActiveRuleIDs []string

	// UpdateGen は非同期コールバックの世代番号。
	// コールバック受信時に一致しない場合は陳腐化として破棄する。
	UpdateGen uint64

	// UpdateInFlight はAuthorityへの更新が送信中であることを示す。
	// セッションあたり同時に1つまで。
	UpdateInFlight bool

	// FlowsDeactivated は終了シーケンスでフロー無効化が完了したことを示す
	FlowsDeactivated bool

	// TerminateIssued はAuthorityへの終了要求が発行済みであることを示す
	TerminateIssued bool
}

// NewSession はCREATING状態のセッションを生成する
func NewSession(subscriberID string) *Session {
	return &Session{
		SubscriberID: subscriberID,
		State:        StateCreating,
		Credits:      make(map[uint32]*credit.Entry),
	}
}

// Lock はセッションの排他ロックを取得する
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock はセッションの排他ロックを解放する
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// EntryFor は課金キーに対応するクレジットエントリを返す。
// 存在しない場合は新規作成して登録する。
// 呼び出し側がロックを保持していること。
func (s *Session) EntryFor(chargingKey uint32) *credit.Entry {
	e, ok := s.Credits[chargingKey]
	if !ok {
		e = credit.NewEntry(chargingKey, 0)
		s.Credits[chargingKey] = e
	}
	return e
}
