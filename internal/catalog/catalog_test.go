package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/oyaguma3/pcef-enforcer-poc/pkg/apperr"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func setupValkey(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestResolve(t *testing.T) {
	cat := New(map[string]uint32{
		"rule1": 1,
		"rule2": 1,
		"rule3": 2,
	})

	tests := []struct {
		ruleID  string
		wantKey uint32
		wantOK  bool
	}{
		{"rule1", 1, true},
		{"rule2", 1, true},
		{"rule3", 2, true},
		{"unknown", 0, false},
	}

	for _, tt := range tests {
		key, ok := cat.Resolve(tt.ruleID)
		if ok != tt.wantOK {
			t.Errorf("Resolve(%q) ok = %v, want %v", tt.ruleID, ok, tt.wantOK)
		}
		if key != tt.wantKey {
			t.Errorf("Resolve(%q) key = %d, want %d", tt.ruleID, key, tt.wantKey)
		}
	}
}

func TestLoad(t *testing.T) {
	mr, client := setupValkey(t)
	mr.HSet("rules:catalog", "rule1", "1")
	mr.HSet("rules:catalog", "rule2", "1")
	mr.HSet("rules:catalog", "rule3", "2")

	cat, err := Load(context.Background(), client, testLogger())
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cat.Size() != 3 {
		t.Errorf("Size() = %d, want 3", cat.Size())
	}
	if key, ok := cat.Resolve("rule3"); !ok || key != 2 {
		t.Errorf("Resolve(rule3) = (%d, %v), want (2, true)", key, ok)
	}
}

func TestLoadSkipsInvalidEntries(t *testing.T) {
	mr, client := setupValkey(t)
	mr.HSet("rules:catalog", "rule1", "1")
	mr.HSet("rules:catalog", "bad-rule", "not-a-number")
	mr.HSet("rules:catalog", "negative", "-5")

	cat, err := Load(context.Background(), client, testLogger())
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cat.Size() != 1 {
		t.Errorf("Size() = %d, want 1", cat.Size())
	}
	if _, ok := cat.Resolve("bad-rule"); ok {
		t.Error("bad-rule should not be resolvable")
	}
}

func TestLoadEmpty(t *testing.T) {
	_, client := setupValkey(t)

	_, err := Load(context.Background(), client, testLogger())
	if !errors.Is(err, apperr.ErrCatalogEmpty) {
		t.Errorf("Load() error = %v, want ErrCatalogEmpty", err)
	}
}

func TestLoadConnectionError(t *testing.T) {
	mr, client := setupValkey(t)
	mr.Close()

	_, err := Load(context.Background(), client, testLogger())
	if !errors.Is(err, apperr.ErrValkeyCommand) {
		t.Errorf("Load() error = %v, want ErrValkeyCommand", err)
	}
}
