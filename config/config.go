package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/awantoch/edgebridge/constants"
)

var (
	ErrConfigNotValid       = errors.New("configuration not valid")
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
	ErrUnsupportedFormat    = errors.New("unsupported configuration format")
)

//go:embed edgebridge.schema.json
var schemaJSON []byte

type Config struct {
	Adapter AdapterConfig  `json:"adapter" yaml:"adapter"`
	Log     LogConfig      `json:"log" yaml:"log"`
	Tracing *TracingConfig `json:"tracing,omitempty" yaml:"tracing,omitempty"`
	HTTP    HTTPConfig     `json:"http" yaml:"http"`
	Metrics MetricsConfig  `json:"metrics" yaml:"metrics"`
}

// AdapterConfig locates the entry adapter and the backend it binds.
type AdapterConfig struct {
	// Dir is the adapter's own directory. Empty means derive it from the working directory.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty" env:"EDGEBRIDGE_ADAPTER_DIR"`
	// BackendDir is the sibling directory name, resolved against Dir's parent.
	BackendDir string `json:"backend_dir,omitempty" yaml:"backend_dir,omitempty" env:"EDGEBRIDGE_BACKEND_DIR"`
	// App is the registry name of the application to bind.
	App string `json:"app,omitempty" yaml:"app,omitempty" env:"EDGEBRIDGE_APP"`
}

type LogConfig struct {
	Level string `json:"level,omitempty" yaml:"level,omitempty" env:"EDGEBRIDGE_LOG_LEVEL"`
}

type TracingConfig struct {
	Exporter    string `json:"exporter,omitempty" yaml:"exporter,omitempty" env:"EDGEBRIDGE_TRACING_EXPORTER"`
	Endpoint    string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `json:"service_name,omitempty" yaml:"service_name,omitempty" env:"OTEL_SERVICE_NAME"`
}

type HTTPConfig struct {
	Host string `json:"host,omitempty" yaml:"host,omitempty" env:"EDGEBRIDGE_HTTP_HOST"`
	Port int    `json:"port,omitempty" yaml:"port,omitempty" env:"EDGEBRIDGE_HTTP_PORT"`
}

type MetricsConfig struct {
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty" env:"EDGEBRIDGE_METRICS_ADDR"`
}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		Adapter: AdapterConfig{
			BackendDir: constants.BackendDirName,
			App:        constants.DefaultAppName,
		},
		Log: LogConfig{Level: constants.LogLevelInfo},
		HTTP: HTTPConfig{
			Host: constants.DefaultHTTPHost,
			Port: constants.DefaultHTTPPort,
		},
	}
}

// LoadConfig reads a JSON or YAML configuration file and validates it against the
// embedded schema. Fields absent from the file keep their zero value.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := decodeDocument(path, data)
	if err != nil {
		return nil, err
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}
	// Round-trip through JSON so both formats share one set of struct tags.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(normalized, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load builds the effective configuration: defaults, then the file at path, then
// environment variables. Only the default file may be absent; a path someone
// named explicitly has to exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadConfig(path)
		switch {
		case err == nil:
			cfg.Merge(fileCfg)
		case errors.Is(err, os.ErrNotExist) && filepath.Clean(path) == DefaultConfigPath:
		case errors.Is(err, ErrConfigNotValid), errors.Is(err, ErrUnsupportedFormat):
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		default:
			return nil, fmt.Errorf("%w: failed to load config %s: %w", ErrConfigNotValid, path, err)
		}
	}
	if err := FromEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv overlays environment variables on cfg. Unset variables leave fields untouched.
func FromEnv(cfg *Config) error {
	if cfg.Tracing == nil {
		cfg.Tracing = &TracingConfig{}
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}
	if *cfg.Tracing == (TracingConfig{}) {
		cfg.Tracing = nil
	}
	return nil
}

// Merge copies every non-zero field of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Adapter.Dir != "" {
		c.Adapter.Dir = other.Adapter.Dir
	}
	if other.Adapter.BackendDir != "" {
		c.Adapter.BackendDir = other.Adapter.BackendDir
	}
	if other.Adapter.App != "" {
		c.Adapter.App = other.Adapter.App
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Tracing != nil {
		t := *other.Tracing
		c.Tracing = &t
	}
	if other.HTTP.Host != "" {
		c.HTTP.Host = other.HTTP.Host
	}
	if other.HTTP.Port != 0 {
		c.HTTP.Port = other.HTTP.Port
	}
	if other.Metrics.Addr != "" {
		c.Metrics.Addr = other.Metrics.Addr
	}
}

// Validate checks the effective configuration, including values that came from
// the environment and never passed through the schema.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Adapter.App) == "" {
		problems = append(problems, "adapter.app must not be empty")
	}
	if strings.TrimSpace(c.Adapter.BackendDir) == "" {
		problems = append(problems, "adapter.backend_dir must not be empty")
	} else if filepath.IsAbs(c.Adapter.BackendDir) {
		problems = append(problems, "adapter.backend_dir must be relative to the adapter's parent directory")
	}
	switch strings.ToLower(c.Log.Level) {
	case "", constants.LogLevelDebug, constants.LogLevelInfo, constants.LogLevelWarn, constants.LogLevelError:
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	if c.Tracing != nil {
		switch c.Tracing.Exporter {
		case "", constants.TracingExporterNone, constants.TracingExporterStdout, constants.TracingExporterOTLP:
		default:
			problems = append(problems, fmt.Sprintf("tracing.exporter %q is not supported", c.Tracing.Exporter))
		}
	}
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		problems = append(problems, "http.port must be 0-65535 (0 = default)")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrConfigNotValid, strings.Join(problems, ", "))
	}
	return nil
}

func decodeDocument(path string, data []byte) (any, error) {
	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return doc, nil
}

func validateDocument(doc any) error {
	schema, err := jsonschema.CompileString(constants.ConfigSchemaFile, string(schemaJSON))
	if err != nil {
		return err
	}
	// The validator expects JSON-shaped values; YAML decodes numbers as int.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var v any
	dec := json.NewDecoder(bytes.NewReader(normalized))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %s", ErrConfigNotValid, err.Error())
	}
	return nil
}
