package constants

// Content Types
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain"
)

// HTTP Headers
const (
	HeaderContentType = "Content-Type"
)

// HTTP Paths
const (
	PathHealthz = "/healthz"
	PathVersion = "/version"
	PathMetrics = "/metrics"
)
