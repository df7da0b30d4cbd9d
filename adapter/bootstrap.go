package adapter

import (
	"context"
	"net/http"
	"os"

	"github.com/awantoch/edgebridge/config"
	"github.com/awantoch/edgebridge/constants"
	"github.com/awantoch/edgebridge/logger"
	"github.com/awantoch/edgebridge/telemetry"
)

// LoadFromEnv reads configuration the way a function instance sees it (an
// optional file named by EDGEBRIDGE_CONFIG plus environment variables) and binds
// the configured application. Tracing is flushed before returning because the
// load step is the only thing it observes.
func LoadFromEnv(ctx context.Context) (http.Handler, error) {
	cfg, err := config.Load(os.Getenv(constants.EnvConfigPath))
	if err != nil {
		return nil, err
	}
	return LoadWithConfig(ctx, cfg)
}

// LoadWithConfig binds the application described by cfg.
func LoadWithConfig(ctx context.Context, cfg *config.Config) (http.Handler, error) {
	_, h, err := Bootstrap(ctx, cfg)
	return h, err
}

// Bootstrap applies cfg's logging and tracing settings, then loads a new Adapter.
// The Adapter is returned even when loading fails so callers can report its layout.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Adapter, http.Handler, error) {
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		logger.Warn("keeping current log level: %v", err)
	}
	shutdown, err := telemetry.Init(cfg)
	if err != nil {
		logger.Warn("tracing disabled: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.Debug("tracing shutdown: %v", err)
		}
	}()

	a := New(OptionsFromConfig(cfg))
	h, err := a.Load(ctx)
	return a, h, err
}

// MustLoad binds the configured application or panics with the load error itself,
// which fails the function's cold start.
func MustLoad() http.Handler {
	h, err := LoadFromEnv(context.Background())
	if err != nil {
		panic(err)
	}
	return h
}
