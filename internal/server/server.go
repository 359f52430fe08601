package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/pcef-enforcer-poc/internal/config"
)

// Server はローカルエージェントAPIのHTTPサーバー。
type Server struct {
	httpServer *http.Server
}

// New は新しいServerを生成する。
func New(cfg *config.Config, h *SessionHandler) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(TraceIDMiddleware(), LoggingMiddleware(), RecoveryMiddleware())

	SetupRouter(engine, h)

	return &Server{
		httpServer: &http.Server{
			Addr:    cfg.ListenAddr,
			Handler: engine,
		},
	}
}

// Run はサーバーを起動する。
func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown はサーバーを停止する。
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
