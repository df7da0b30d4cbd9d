// Package backend is the application the serverless entry point binds. It
// registers itself under the well-known application name when imported; the
// entry adapter resolves it from there and serves every request with it.
package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/awantoch/edgebridge/constants"
	"github.com/awantoch/edgebridge/logger"
	"github.com/awantoch/edgebridge/registry"
)

// Version is set at build time with -ldflags "-X github.com/awantoch/edgebridge/backend.Version=...".
var Version = "dev"

func init() {
	registry.Register(constants.DefaultAppName, New)
}

// App is the backend application object.
type App struct {
	mux        *http.ServeMux
	dir        string
	instanceID string
}

// New builds the application for the resolved layout.
func New(ctx context.Context, env registry.Env) (http.Handler, error) {
	a := &App{
		mux:        http.NewServeMux(),
		dir:        env.BackendDir,
		instanceID: env.InstanceID,
	}
	a.mux.HandleFunc(constants.PathHealthz, a.healthz)
	a.mux.HandleFunc(constants.PathVersion, a.version)
	logger.DebugCtx(ctx, "backend application ready", "dir", a.dir)
	return a, nil
}

// Dir is the backend directory the application was built from.
func (a *App) Dir() string { return a.dir }

// InstanceID is the function instance this application was built for.
func (a *App) InstanceID() string { return a.instanceID }

func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

func (a *App) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "healthy"})
}

func (a *App) version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"version":     Version,
		"instance_id": a.instanceID,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to write response: %v", err)
	}
}
