// Package main はPCEFエンフォーサーのエントリーポイント。
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/oyaguma3/pcef-enforcer-poc/internal/catalog"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/config"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/enforcer"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/gateway"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/server"
	"github.com/oyaguma3/pcef-enforcer-poc/internal/session"
	"github.com/oyaguma3/pcef-enforcer-poc/pkg/apperr"
	"github.com/oyaguma3/pcef-enforcer-poc/pkg/valkey"
)

func main() {
	// 1. 設定読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. ロガー初期化
	initLogger(cfg)

	slog.Info("starting pcef-enforcer",
		"listen_addr", cfg.ListenAddr,
		"log_level", cfg.LogLevel,
		"usage_report_threshold", cfg.UsageReportThreshold,
	)

	// 3. Valkey接続
	valkeyOpts := valkey.DefaultOptions().
		WithAddr(cfg.ValkeyAddr()).
		WithPassword(cfg.RedisPass).
		WithTimeouts(config.ValkeyConnectTimeout, config.ValkeyCommandTimeout, config.ValkeyCommandTimeout)
	valkeyClient, err := valkey.NewClient(valkeyOpts)
	if err != nil {
		slog.Error("failed to connect to Valkey",
			"error", fmt.Errorf("%w: %v", apperr.ErrValkeyConnection, err).Error(),
		)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	slog.Info("connected to Valkey", "addr", cfg.ValkeyAddr())

	// 4. ルールカタログ読み込み
	loadCtx, loadCancel := context.WithTimeout(context.Background(), config.ValkeyCommandTimeout)
	ruleCatalog, err := catalog.Load(loadCtx, valkeyClient, slog.Default())
	loadCancel()
	if err != nil {
		slog.Error("failed to load rule catalog", "error", err)
		os.Exit(1)
	}

	// 5. 依存オブジェクト生成
	sessionStore := session.NewStore()
	authorityClient := gateway.NewAuthorityClient(cfg)
	flowClient := gateway.NewFlowClient(cfg)

	coordinator := enforcer.NewCoordinator(sessionStore, ruleCatalog, authorityClient, flowClient, cfg)

	// 6. サーバー起動
	srv := server.New(cfg, server.NewSessionHandler(coordinator, cfg))

	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// 7. シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// 送信中の非同期更新をドレインしてから終了する
	coordinator.Wait()

	slog.Info("server stopped")
}

// initLogger はロガーを初期化する。
func initLogger(cfg *config.Config) {
	level := slog.LevelInfo
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(handler).With("app", "pcef-enforcer")
	slog.SetDefault(logger)
}
