// Package config はアプリケーション設定を提供する。
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/oyaguma3/pcef-enforcer-poc/pkg/valkey"
)

// Config はアプリケーション設定を保持する
type Config struct {
	// リモートコラボレーター接続設定
	AuthorityURL string `envconfig:"AUTHORITY_URL" required:"true"`
	FlowCtlURL   string `envconfig:"FLOWCTL_URL" required:"true"`

	// Valkey接続設定（ルールカタログの読み込み元）
	RedisHost string `envconfig:"REDIS_HOST" required:"true"`
	RedisPort string `envconfig:"REDIS_PORT" required:"true"`
	RedisPass string `envconfig:"REDIS_PASS" required:"true"`

	// HTTPサーバー設定
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`

	// クレジット報告設定
	// 付与クォータに対する報告閾値（0.0〜1.0）
	UsageReportThreshold float64 `envconfig:"USAGE_REPORT_THRESHOLD" default:"0.5"`

	// ログ設定
	LogMaskIMSI bool   `envconfig:"LOG_MASK_IMSI" default:"true"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"INFO"`
}

// Load は環境変数から設定を読み込む
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.UsageReportThreshold <= 0 || cfg.UsageReportThreshold > 1 {
		return nil, fmt.Errorf("USAGE_REPORT_THRESHOLD must be in (0, 1], got %v", cfg.UsageReportThreshold)
	}
	return &cfg, nil
}

// ValkeyAddr はValkey接続アドレスを "host:port" 形式で返す
func (c *Config) ValkeyAddr() string {
	return valkey.BuildAddr(c.RedisHost, c.RedisPort)
}
