package session

import (
	"errors"
	"testing"

	"github.com/oyaguma3/pcef-enforcer-poc/pkg/apperr"
)

func TestStorePutGet(t *testing.T) {
	st := NewStore()
	s := NewSession("001010000000001")

	if err := st.Put(s); err != nil {
		t.Fatalf("Put() returned error: %v", err)
	}

	got, err := st.Get("001010000000001")
	if err != nil {
		t.Fatalf("Get() returned error: %v", err)
	}
	if got != s {
		t.Error("Get() returned a different session")
	}
}

func TestStorePutDuplicate(t *testing.T) {
	st := NewStore()
	if err := st.Put(NewSession("001010000000001")); err != nil {
		t.Fatalf("Put() returned error: %v", err)
	}

	err := st.Put(NewSession("001010000000001"))
	if !errors.Is(err, apperr.ErrSessionAlreadyExists) {
		t.Errorf("Put() error = %v, want ErrSessionAlreadyExists", err)
	}
}

func TestStoreGetNotFound(t *testing.T) {
	st := NewStore()
	_, err := st.Get("001010000000099")
	if !errors.Is(err, apperr.ErrSessionNotFound) {
		t.Errorf("Get() error = %v, want ErrSessionNotFound", err)
	}
}

func TestStoreDelete(t *testing.T) {
	st := NewStore()
	st.Put(NewSession("001010000000001"))
	st.Delete("001010000000001")

	if _, err := st.Get("001010000000001"); !errors.Is(err, apperr.ErrSessionNotFound) {
		t.Errorf("Get() after Delete() error = %v, want ErrSessionNotFound", err)
	}
	if st.Count() != 0 {
		t.Errorf("Count() = %d, want 0", st.Count())
	}
}

func TestStoreAll(t *testing.T) {
	st := NewStore()
	st.Put(NewSession("001010000000001"))
	st.Put(NewSession("001010000000002"))

	all := st.All()
	if len(all) != 2 {
		t.Errorf("All() returned %d sessions, want 2", len(all))
	}
}

func TestSessionEntryFor(t *testing.T) {
	s := NewSession("001010000000001")

	e1 := s.EntryFor(1)
	e2 := s.EntryFor(1)
	if e1 != e2 {
		t.Error("EntryFor() should return the same entry for the same key")
	}
	if e1.ChargingKey != 1 {
		t.Errorf("ChargingKey = %d, want 1", e1.ChargingKey)
	}

	e3 := s.EntryFor(2)
	if e3 == e1 {
		t.Error("EntryFor() should return distinct entries for distinct keys")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateCreating, "CREATING"},
		{StateActive, "ACTIVE"},
		{StateTerminating, "TERMINATING"},
		{StateTerminated, "TERMINATED"},
		{State(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
