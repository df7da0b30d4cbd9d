// Package adapter binds a backend application to the serverless entry point.
//
// Loading is a one-shot step run while the function instance starts: resolve
// the sibling backend directory, look the application up in the registry, call
// its factory, and hand the resulting object back untouched. Every failure is
// returned to the caller; nothing is retried or replaced with a fallback.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/awantoch/edgebridge/config"
	"github.com/awantoch/edgebridge/constants"
	"github.com/awantoch/edgebridge/layout"
	"github.com/awantoch/edgebridge/logger"
	"github.com/awantoch/edgebridge/registry"
	"github.com/awantoch/edgebridge/telemetry"
)

// ErrLoadPanicked is returned by Load after an earlier call panicked and was recovered.
var ErrLoadPanicked = errors.New("entry adapter load panicked")

// Options select the layout and application an Adapter binds.
type Options struct {
	// AdapterDir is the adapter's own directory. Empty derives it from the working directory.
	AdapterDir string
	// BackendDir is the sibling directory holding the backend entry module.
	BackendDir string
	// App is the name the backend registered its application under.
	App string
	// Registry to resolve App in. Nil means the process-wide registry.
	Registry *registry.Registry
}

// OptionsFromConfig maps the adapter section of cfg onto Options.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{}
	}
	return Options{
		AdapterDir: cfg.Adapter.Dir,
		BackendDir: cfg.Adapter.BackendDir,
		App:        cfg.Adapter.App,
	}
}

// Adapter resolves and holds a reference to the backend application.
type Adapter struct {
	opts       Options
	instanceID string

	once    sync.Once
	handler http.Handler
	layout  layout.Layout
	err     error
}

// New creates an Adapter. Nothing is resolved until Load.
func New(opts Options) *Adapter {
	if opts.App == "" {
		opts.App = constants.DefaultAppName
	}
	if opts.BackendDir == "" {
		opts.BackendDir = constants.BackendDirName
	}
	if opts.Registry == nil {
		opts.Registry = registry.Default()
	}
	return &Adapter{opts: opts, instanceID: uuid.NewString()}
}

// Load resolves the layout and the application exactly once. Later calls return
// the same handler, or the same error, without running the backend factory again.
// The returned handler is the object the factory produced, not a wrapper.
//
// A panic in the backend factory propagates to the caller. If the caller
// recovers, later calls report ErrLoadPanicked instead of running the factory again.
func (a *Adapter) Load(ctx context.Context) (http.Handler, error) {
	a.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				a.handler, a.err = nil, fmt.Errorf("%w: %v", ErrLoadPanicked, r)
				panic(r)
			}
		}()
		a.handler, a.layout, a.err = a.load(ctx)
	})
	return a.handler, a.err
}

// App is the registry name this adapter binds.
func (a *Adapter) App() string { return a.opts.App }

// InstanceID identifies this function instance in logs, spans and metrics.
func (a *Adapter) InstanceID() string { return a.instanceID }

// Layout is the resolved directory pair; zero until a successful Load.
func (a *Adapter) Layout() layout.Layout { return a.layout }

func (a *Adapter) load(ctx context.Context) (http.Handler, layout.Layout, error) {
	start := time.Now()
	ctx = logger.WithInstanceID(ctx, a.instanceID)
	ctx, span := telemetry.Tracer().Start(ctx, constants.SpanAdapterLoad,
		trace.WithAttributes(
			attribute.String("edgebridge.app", a.opts.App),
			attribute.String("edgebridge.instance_id", a.instanceID),
		),
	)
	defer span.End()

	logger.DebugCtx(ctx, "loading entry adapter", "app", a.opts.App, "backend_dir", a.opts.BackendDir)
	h, l, err := a.resolve(ctx)
	failure := Classify(err)
	telemetry.ObserveLoad(failure.String(), time.Since(start))
	span.SetAttributes(attribute.String("edgebridge.outcome", failure.String()))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, failure.String())
		// The caller owns reporting; the host prints the cold-start error itself.
		logger.DebugCtx(ctx, "entry adapter load failed", "failure", failure.String())
		return nil, layout.Layout{}, err
	}

	span.SetAttributes(
		attribute.String("edgebridge.adapter_dir", l.AdapterDir),
		attribute.String("edgebridge.backend_dir", l.BackendDir),
	)
	telemetry.SetInstance(a.instanceID, a.opts.App)
	logger.InfoCtx(ctx, "entry adapter bound", "app", a.opts.App, "backend_dir", l.BackendDir,
		"duration", time.Since(start).String())
	return h, l, nil
}

func (a *Adapter) resolve(ctx context.Context) (http.Handler, layout.Layout, error) {
	adapterDir, err := layout.AdapterDir(a.opts.AdapterDir)
	if err != nil {
		return nil, layout.Layout{}, fmt.Errorf("%w: %v", layout.ErrNoAdapterDir, err)
	}
	l, err := layout.Resolve(adapterDir, a.opts.BackendDir)
	if err != nil {
		return nil, layout.Layout{}, err
	}

	factory, err := a.opts.Registry.Get(a.opts.App)
	if err != nil {
		return nil, l, err
	}
	h, err := factory(ctx, registry.Env{
		AdapterDir: l.AdapterDir,
		BackendDir: l.BackendDir,
		InstanceID: a.instanceID,
	})
	if err != nil {
		// The backend's own error, as is.
		return nil, l, err
	}
	if h == nil {
		return nil, l, fmt.Errorf("%w: %q", registry.ErrNilApplication, a.opts.App)
	}
	return h, l, nil
}
