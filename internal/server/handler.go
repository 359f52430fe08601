// Package server はローカルエージェント向けHTTP APIを提供する。
package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/pcef-enforcer-poc/internal/config"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/dto"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/enforcer"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/gateway"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/logging"
	"github.com/oyaguma3/pcef-enforcer-poc/pkg/apperr"
	"github.com/oyaguma3/pcef-enforcer-poc/pkg/httputil"
)

// SessionHandler はセッション操作APIのハンドラー。
type SessionHandler struct {
	enforcer enforcer.SessionEnforcer
	cfg      *config.Config
}

// NewSessionHandler は新しいSessionHandlerを生成する。
func NewSessionHandler(enf enforcer.SessionEnforcer, cfg *config.Config) *SessionHandler {
	return &SessionHandler{
		enforcer: enf,
		cfg:      cfg,
	}
}

// HandleHealth はGET /health のハンドラー。
func (h *SessionHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// HandleCreateSession はPOST /api/v1/session のハンドラー。
func (h *SessionHandler) HandleCreateSession(c *gin.Context) {
	traceID := c.GetString(TraceIDKey)
	ctx := gateway.WithTraceID(c.Request.Context(), traceID)

	// 1. リクエストバインド
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid request body",
			"trace_id", traceID,
			"event_id", "SESSION_CREATE_ERR",
			"error", err.Error(),
		)
		httputil.WriteError(c, httputil.BadRequest("Invalid request body"))
		return
	}

	// 2. IMSI検証
	if err := validateIMSI(req.SubscriberID); err != nil {
		slog.Warn("invalid IMSI format",
			"trace_id", traceID,
			"event_id", "SESSION_CREATE_ERR",
			"imsi", h.maskIMSI(req.SubscriberID),
			"error", err.Error(),
		)
		httputil.WriteError(c, httputil.BadRequest("subscriber_id must be 15 digits"))
		return
	}

	// 3. セッション確立
	resp, err := h.enforcer.CreateSession(ctx, &req)
	if err != nil {
		h.handleError(c, traceID, req.SubscriberID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleRuleStats はPOST /api/v1/rulestats のハンドラー。
// データパスからのfire-and-forget報告であり、リモート障害は
// 呼び出し元に伝播しない。
func (h *SessionHandler) HandleRuleStats(c *gin.Context) {
	traceID := c.GetString(TraceIDKey)
	ctx := gateway.WithTraceID(c.Request.Context(), traceID)

	var req dto.RuleStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid rule stats body",
			"trace_id", traceID,
			"event_id", "RULE_STATS_ERR",
			"error", err.Error(),
		)
		httputil.WriteError(c, httputil.BadRequest("Invalid request body"))
		return
	}

	h.enforcer.ReportRuleStats(ctx, req.Records)
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "accepted"})
}

// HandleEndSession はPOST /api/v1/session/end のハンドラー。
func (h *SessionHandler) HandleEndSession(c *gin.Context) {
	traceID := c.GetString(TraceIDKey)
	ctx := gateway.WithTraceID(c.Request.Context(), traceID)

	var req dto.EndSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid request body",
			"trace_id", traceID,
			"event_id", "SESSION_END_ERR",
			"error", err.Error(),
		)
		httputil.WriteError(c, httputil.BadRequest("Invalid request body"))
		return
	}

	resp, err := h.enforcer.EndSession(ctx, &req)
	if err != nil {
		h.handleError(c, traceID, req.SubscriberID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// handleError はエラーレスポンスを処理する。
func (h *SessionHandler) handleError(c *gin.Context, traceID, imsi string, err error) {
	logAttrs := []any{
		"trace_id", traceID,
		"imsi", h.maskIMSI(imsi),
		"error", err.Error(),
	}

	switch {
	case errors.Is(err, apperr.ErrSessionAlreadyExists):
		slog.Warn("session already exists", logAttrs...)
		httputil.WriteError(c, httputil.Conflict("session already exists for subscriber"))
	case errors.Is(err, apperr.ErrSessionNotFound):
		slog.Warn("session not found", logAttrs...)
		httputil.WriteError(c, httputil.NotFound("no active session for subscriber"))
	case errors.Is(err, apperr.ErrSessionTerminated):
		slog.Warn("session terminated during establishment", logAttrs...)
		httputil.WriteError(c, httputil.Conflict("session was terminated during establishment"))
	case errors.Is(err, gateway.ErrCircuitOpen):
		slog.Error("credit authority circuit open", logAttrs...)
		httputil.WriteError(c, httputil.ServiceUnavailable("credit authority temporarily unavailable"))
	case errors.Is(err, apperr.ErrAuthorityUnavailable):
		slog.Error("credit authority unavailable", logAttrs...)
		httputil.WriteError(c, httputil.BadGateway("credit authority did not accept the request"))
	default:
		slog.Error("unexpected error", logAttrs...)
		httputil.WriteError(c, httputil.InternalServerError("An unexpected error occurred"))
	}
}

// validateIMSI はIMSI形式を検証する。
func validateIMSI(imsi string) error {
	if len(imsi) != 15 {
		return apperr.NewValidationError("subscriber_id", fmt.Sprintf("IMSI must be 15 digits, got %d", len(imsi)))
	}
	for _, c := range imsi {
		if c < '0' || c > '9' {
			return apperr.NewValidationError("subscriber_id", "IMSI must contain only digits")
		}
	}
	return nil
}

// maskIMSI はログ出力用のIMSIマスクを適用する。
func (h *SessionHandler) maskIMSI(imsi string) string {
	return logging.MaskIMSI(imsi, h.cfg.LogMaskIMSI)
}
