package gateway

// HTTPヘッダ名
const (
	HeaderTraceID     = "X-Trace-ID"
	HeaderContentType = "Content-Type"
)

// Content-Type
const (
	ContentTypeJSON = "application/json"
)

// ターゲット名（エラー・ログ用）
const (
	TargetAuthority = "credit-authority"
	TargetFlowCtl   = "flow-controller"
)

// Credit Authority APIパス
const (
	PathSessionCreate    = "/api/v1/session"
	PathSessionUpdate    = "/api/v1/session/update"
	PathSessionTerminate = "/api/v1/session/terminate"
)

// Flow Controller APIパス
const (
	PathFlowsActivate   = "/api/v1/flows/activate"
	PathFlowsDeactivate = "/api/v1/flows/deactivate"
)
