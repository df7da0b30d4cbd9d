package constants

// Configuration Files
const (
	ConfigFileName     = "edgebridge.config.json"
	ConfigSchemaFile   = "edgebridge.schema.json"
	DefaultEnvFileName = ".env"
)

// Environment Variables
const (
	EnvDebug           = "EDGEBRIDGE_DEBUG"
	EnvAdapterDir      = "EDGEBRIDGE_ADAPTER_DIR"
	EnvBackendDir      = "EDGEBRIDGE_BACKEND_DIR"
	EnvApp             = "EDGEBRIDGE_APP"
	EnvConfigPath      = "EDGEBRIDGE_CONFIG"
	EnvLogLevel        = "EDGEBRIDGE_LOG_LEVEL"
	EnvTracingExporter = "EDGEBRIDGE_TRACING_EXPORTER"
	EnvTracingService  = "OTEL_SERVICE_NAME"
	EnvTracingEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvHTTPHost        = "EDGEBRIDGE_HTTP_HOST"
	EnvHTTPPort        = "EDGEBRIDGE_HTTP_PORT"
	EnvMetricsAddr     = "EDGEBRIDGE_METRICS_ADDR"
)

// Local server defaults
const (
	DefaultHTTPHost = "localhost"
	DefaultHTTPPort = 3000
)
