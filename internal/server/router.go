package server

import "github.com/gin-gonic/gin"

// SetupRouter はルーティングを設定する。
func SetupRouter(engine *gin.Engine, h *SessionHandler) {
	// ヘルスチェック
	engine.GET("/health", h.HandleHealth)

	// API v1
	v1 := engine.Group("/api/v1")
	{
		v1.POST("/session", h.HandleCreateSession)
		v1.POST("/session/end", h.HandleEndSession)
		v1.POST("/rulestats", h.HandleRuleStats)
	}
}
