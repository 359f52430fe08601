package gateway

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/oyaguma3/pcef-enforcer-poc/internal/config"
)

// FlowClient はFlow ControllerのHTTPクライアント実装。
// Flow Controllerはデータパスと同一ホスト内にある前提のため
// Circuit Breakerは介さない。失敗は呼び出し側で次のイベント時に再試行される。
type FlowClient struct {
	httpClient *resty.Client
	baseURL    string
}

// NewFlowClient は新しいFlow Controllerクライアントを生成する。
func NewFlowClient(cfg *config.Config) *FlowClient {
	httpClient := resty.New().
		SetTimeout(config.FlowRequestTimeout)

	return &FlowClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.FlowCtlURL, "/"),
	}
}

// ActivateFlows はサブスクライバーのフローを有効化する。
func (c *FlowClient) ActivateFlows(ctx context.Context, req *FlowRequest) error {
	return c.post(ctx, PathFlowsActivate, req)
}

// DeactivateFlows はサブスクライバーのフローを無効化する。
func (c *FlowClient) DeactivateFlows(ctx context.Context, req *FlowRequest) error {
	return c.post(ctx, PathFlowsDeactivate, req)
}

func (c *FlowClient) post(ctx context.Context, path string, reqBody any) error {
	traceID, ok := TraceIDFrom(ctx)
	if !ok {
		return ErrTraceIDMissing
	}

	start := time.Now()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader(HeaderTraceID, traceID).
		SetHeader(HeaderContentType, ContentTypeJSON).
		SetBody(reqBody).
		Post(c.baseURL + path)

	if err != nil {
		return &ConnectionError{Target: TargetFlowCtl, Cause: err}
	}

	latencyMs := time.Since(start).Milliseconds()
	statusCode := resp.StatusCode()

	if statusCode != 200 {
		apiErr := parseAPIError(TargetFlowCtl, statusCode, resp.Body())
		slog.Error("flow controller api error",
			"event_id", "FLOWCTL_API_ERR",
			"error", apiErr.Error(),
			"http_status", statusCode,
			"latency_ms", latencyMs,
		)
		return apiErr
	}

	slog.Debug("flow controller api success",
		"path", path,
		"latency_ms", latencyMs,
	)
	return nil
}
