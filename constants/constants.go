package constants

// ============================================================================
// LAYOUT
// ============================================================================

// Directory layout the host packages by directory.
const (
	// AdapterDirName is the directory holding the host-discovered entry file.
	AdapterDirName = "api"
	// BackendDirName is the sibling directory holding the backend entry module.
	BackendDirName = "backend"
	// EntryFile is the function file the host discovers.
	EntryFile = AdapterDirName + "/index.go"
)

// ============================================================================
// APPLICATION
// ============================================================================

// Application registry names
const (
	// DefaultAppName is the well-known name the backend registers its application under.
	DefaultAppName = "app"
	// ExportName is the symbol the host looks up in the entry package.
	ExportName = "Handler"
	// ServiceName is the default service name reported to tracing backends.
	ServiceName = "edgebridge"
)

// ============================================================================
// LOGGING
// ============================================================================

// Log levels
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// ============================================================================
// TELEMETRY
// ============================================================================

// Tracing exporters
const (
	TracingExporterNone   = "none"
	TracingExporterStdout = "stdout"
	TracingExporterOTLP   = "otlp"
)

// Load outcomes used as metric labels
const (
	OutcomeOK     = "ok"
	OutcomePath   = "path"
	OutcomeImport = "import"
	OutcomeSymbol = "symbol"
	OutcomeConfig = "config"
)

// Span names
const (
	SpanAdapterLoad = "adapter.load"
)

// ============================================================================
// PACKAGING
// ============================================================================

// Vercel function defaults
const (
	DefaultVercelMaxDuration = 10
	VercelConfigFile         = "vercel.json"
)
