package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oyaguma3/pcef-enforcer-poc/internal/config"
)

func newTestConfig(authorityURL, flowCtlURL string) *config.Config {
	return &config.Config{
		AuthorityURL: authorityURL,
		FlowCtlURL:   flowCtlURL,
		RedisHost:    "localhost",
		RedisPort:    "6379",
		RedisPass:    "",
	}
}

func ctxWithTrace() context.Context {
	return WithTraceID(context.Background(), "test-trace-id-001")
}

func TestCreateSessionSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// リクエスト検証
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != PathSessionCreate {
			t.Errorf("expected %s, got %s", PathSessionCreate, r.URL.Path)
		}
		if r.Header.Get(HeaderTraceID) == "" {
			t.Error("expected X-Trace-ID header")
		}

		var req CreateSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.SubscriberID != "001010000000001" {
			t.Errorf("expected SubscriberID 001010000000001, got %s", req.SubscriberID)
		}

		w.Header().Set("Content-Type", ContentTypeJSON)
		json.NewEncoder(w).Encode(CreateSessionResponse{
			StaticRuleIDs: []string{"rule1", "rule2", "rule3"},
			Credits: []CreditGrant{
				{ChargingKey: 1, GrantedBytes: 1024},
				{ChargingKey: 2, GrantedBytes: 1024},
			},
		})
	}))
	defer server.Close()

	client := NewAuthorityClient(newTestConfig(server.URL, ""))
	resp, err := client.CreateSession(ctxWithTrace(), &CreateSessionRequest{SubscriberID: "001010000000001"})
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	if len(resp.StaticRuleIDs) != 3 {
		t.Errorf("StaticRuleIDs length = %d, want 3", len(resp.StaticRuleIDs))
	}
	if len(resp.Credits) != 2 {
		t.Fatalf("Credits length = %d, want 2", len(resp.Credits))
	}
	if resp.Credits[0].GrantedBytes != 1024 {
		t.Errorf("GrantedBytes = %d, want 1024", resp.Credits[0].GrantedBytes)
	}
}

func TestCreateSessionMissingTraceID(t *testing.T) {
	client := NewAuthorityClient(newTestConfig("http://localhost:1", ""))
	_, err := client.CreateSession(context.Background(), &CreateSessionRequest{SubscriberID: "001010000000001"})
	if !errors.Is(err, ErrTraceIDMissing) {
		t.Errorf("error = %v, want ErrTraceIDMissing", err)
	}
}

func TestUpdateSessionSuccess(t *testing.T) {
	var received UpdateSessionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != PathSessionUpdate {
			t.Errorf("expected %s, got %s", PathSessionUpdate, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	client := NewAuthorityClient(newTestConfig(server.URL, ""))
	err := client.UpdateSession(ctxWithTrace(), &UpdateSessionRequest{
		SubscriberID: "001010000000001",
		Updates: []CreditUsage{
			{ChargingKey: 1, BytesTx: 512, BytesRx: 1024},
		},
	})
	if err != nil {
		t.Fatalf("UpdateSession failed: %v", err)
	}

	if len(received.Updates) != 1 {
		t.Fatalf("Updates length = %d, want 1", len(received.Updates))
	}
	if received.Updates[0].BytesRx != 1024 {
		t.Errorf("BytesRx = %d, want 1024", received.Updates[0].BytesRx)
	}
}

func TestTerminateSessionSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != PathSessionTerminate {
			t.Errorf("expected %s, got %s", PathSessionTerminate, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	client := NewAuthorityClient(newTestConfig(server.URL, ""))
	err := client.TerminateSession(ctxWithTrace(), &TerminateSessionRequest{SubscriberID: "001010000000001"})
	if err != nil {
		t.Fatalf("TerminateSession failed: %v", err)
	}
}

func TestAuthorityAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ProblemDetails{
			Type:   "about:blank",
			Title:  "Not Found",
			Detail: "session not found",
			Status: 404,
		})
	}))
	defer server.Close()

	client := NewAuthorityClient(newTestConfig(server.URL, ""))
	err := client.UpdateSession(ctxWithTrace(), &UpdateSessionRequest{SubscriberID: "001010000000001"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if !apiErr.IsNotFound() {
		t.Errorf("IsNotFound() = false, want true (status %d)", apiErr.StatusCode)
	}
}

func TestAuthorityServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewAuthorityClient(newTestConfig(server.URL, ""))
	err := client.UpdateSession(ctxWithTrace(), &UpdateSessionRequest{SubscriberID: "001010000000001"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if !apiErr.IsServerError() {
		t.Errorf("IsServerError() = false, want true")
	}
}

func TestAuthorityConnectionError(t *testing.T) {
	// 接続不能なアドレス
	client := NewAuthorityClient(newTestConfig("http://localhost:1", ""))
	err := client.UpdateSession(ctxWithTrace(), &UpdateSessionRequest{SubscriberID: "001010000000001"})

	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("error = %v, want *ConnectionError", err)
	}
	if connErr.Target != TargetAuthority {
		t.Errorf("Target = %s, want %s", connErr.Target, TargetAuthority)
	}
}

func TestAuthorityCircuitOpen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewAuthorityClient(newTestConfig(server.URL, ""))

	// 失敗閾値まで連続で失敗させる
	for i := 0; i < config.CBFailureThreshold; i++ {
		client.UpdateSession(ctxWithTrace(), &UpdateSessionRequest{SubscriberID: "001010000000001"})
	}

	err := client.UpdateSession(ctxWithTrace(), &UpdateSessionRequest{SubscriberID: "001010000000001"})
	if !errors.Is(err, ErrCircuitOpen) {
		t.Errorf("error = %v, want ErrCircuitOpen", err)
	}
}

func TestAuthorityNotImplementedDoesNotTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotImplemented)
	}))
	defer server.Close()

	client := NewAuthorityClient(newTestConfig(server.URL, ""))

	// 501はCB失敗カウントに含まれない
	for i := 0; i < config.CBFailureThreshold+1; i++ {
		err := client.UpdateSession(ctxWithTrace(), &UpdateSessionRequest{SubscriberID: "001010000000001"})
		if errors.Is(err, ErrCircuitOpen) {
			t.Fatalf("circuit should not open on 501 (iteration %d)", i)
		}
	}
}
