package session

import (
	"sync"

	"github.com/oyaguma3/pcef-enforcer-poc/pkg/apperr"
)

// Store はIMSIをキーとするインメモリのセッション格納
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore は空のストアを生成する
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Put はセッションを登録する。
// 同一IMSIのセッションが既に存在する場合はErrSessionAlreadyExistsを返す。
func (st *Store) Put(s *Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[s.SubscriberID]; ok {
		return apperr.ErrSessionAlreadyExists
	}
	st.sessions[s.SubscriberID] = s
	return nil
}

// Get はIMSIに対応するセッションを返す
func (st *Store) Get(subscriberID string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[subscriberID]
	if !ok {
		return nil, apperr.ErrSessionNotFound
	}
	return s, nil
}

// Delete はIMSIに対応するセッションを削除する
func (st *Store) Delete(subscriberID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, subscriberID)
}

// All は現時点の全セッションのスナップショットを返す
func (st *Store) All() []*Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	list := make([]*Session, 0, len(st.sessions))
	for _, s := range st.sessions {
		list = append(list, s)
	}
	return list
}

// Count は登録済みセッション数を返す
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
