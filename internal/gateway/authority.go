package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/oyaguma3/pcef-enforcer-poc/internal/config"
)

// AuthorityClient はCredit AuthorityのHTTPクライアント実装
type AuthorityClient struct {
	httpClient *resty.Client
	cb         *gobreaker.CircuitBreaker
	baseURL    string
}

// NewAuthorityClient は新しいCredit Authorityクライアントを生成する。
func NewAuthorityClient(cfg *config.Config) *AuthorityClient {
	httpClient := resty.New().
		SetTimeout(config.AuthorityRequestTimeout)

	cbSettings := gobreaker.Settings{
		Name:        config.CBName,
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.CBFailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("circuit breaker opened",
					"event_id", "CB_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateHalfOpen:
				slog.Info("circuit breaker half-open",
					"event_id", "CB_HALF_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateClosed:
				slog.Info("circuit breaker closed",
					"event_id", "CB_CLOSE",
					"cb_name", name,
				)
			}
		},
	}

	return &AuthorityClient{
		httpClient: httpClient,
		cb:         gobreaker.NewCircuitBreaker(cbSettings),
		baseURL:    strings.TrimRight(cfg.AuthorityURL, "/"),
	}
}

// CreateSession はセッション作成を要求する。
func (c *AuthorityClient) CreateSession(ctx context.Context, req *CreateSessionRequest) (*CreateSessionResponse, error) {
	body, err := c.post(ctx, PathSessionCreate, req)
	if err != nil {
		return nil, err
	}

	var resp CreateSessionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: json unmarshal: %v", ErrInvalidResponse, err)
	}
	return &resp, nil
}

// UpdateSession は使用量報告を送信する。
func (c *AuthorityClient) UpdateSession(ctx context.Context, req *UpdateSessionRequest) error {
	_, err := c.post(ctx, PathSessionUpdate, req)
	return err
}

// TerminateSession はセッション終了を通知する。
func (c *AuthorityClient) TerminateSession(ctx context.Context, req *TerminateSessionRequest) error {
	_, err := c.post(ctx, PathSessionTerminate, req)
	return err
}

// post はCircuit Breaker経由でJSON POSTを実行し、成功時のレスポンスボディを返す。
func (c *AuthorityClient) post(ctx context.Context, path string, reqBody any) ([]byte, error) {
	traceID, ok := TraceIDFrom(ctx)
	if !ok {
		return nil, ErrTraceIDMissing
	}

	start := time.Now()

	result, err := c.cb.Execute(func() (any, error) {
		resp, err := c.httpClient.R().
			SetContext(ctx).
			SetHeader(HeaderTraceID, traceID).
			SetHeader(HeaderContentType, ContentTypeJSON).
			SetBody(reqBody).
			Post(c.baseURL + path)

		if err != nil {
			return nil, &ConnectionError{Target: TargetAuthority, Cause: err}
		}

		latencyMs := time.Since(start).Milliseconds()
		statusCode := resp.StatusCode()

		// CB失敗判定対象: 5xx（501除く）
		if statusCode >= 500 && statusCode != 501 {
			apiErr := parseAPIError(TargetAuthority, statusCode, resp.Body())
			slog.Error("credit authority api error",
				"event_id", "AUTHORITY_API_ERR",
				"error", apiErr.Error(),
				"http_status", statusCode,
				"latency_ms", latencyMs,
			)
			return nil, apiErr
		}

		// CB失敗判定対象外のエラー: 400, 404, 409, 501
		if statusCode != 200 {
			apiErr := parseAPIError(TargetAuthority, statusCode, resp.Body())
			slog.Error("credit authority api error",
				"event_id", "AUTHORITY_API_ERR",
				"error", apiErr.Error(),
				"http_status", statusCode,
				"latency_ms", latencyMs,
			)
			// CB対象外エラーはnilを返してCBカウントに含めない
			return apiErr, nil
		}

		slog.Debug("credit authority api success",
			"path", path,
			"latency_ms", latencyMs,
		)

		return resp.Body(), nil
	})

	if err != nil {
		// Circuit BreakerがOpen状態
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, ErrCircuitOpen
		}
		return nil, err
	}

	// CB対象外のAPIErrorの場合
	if apiErr, ok := result.(*APIError); ok {
		return nil, apiErr
	}

	body, ok := result.([]byte)
	if !ok {
		return nil, ErrInvalidResponse
	}
	return body, nil
}

// parseAPIError はHTTPエラーレスポンスをAPIErrorに変換する。
func parseAPIError(target string, statusCode int, body []byte) *APIError {
	var details ProblemDetails
	if err := json.Unmarshal(body, &details); err == nil && details.Title != "" {
		return &APIError{
			Target:     target,
			StatusCode: statusCode,
			Message:    details.Title,
			Details:    &details,
		}
	}
	return &APIError{
		Target:     target,
		StatusCode: statusCode,
		Message:    string(body),
	}
}
