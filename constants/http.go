package constants

const (
	HeaderUserIDKey     = "X-User-ID"
	HeaderRequestIDKey  = "X-Request-ID"
	HeaderProxyByKey    = "X-Proxy-By"
	HeaderLoginTokenKey = "X-Tracker-JWT-Token"
)
const GatewayServiceName = "TaskTracker"

const (
	ContextUserClaimsKey = "X-Tracker-User-Claims"
)
