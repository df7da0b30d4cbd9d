// Package logger separates two audiences: people running the CLI, who get plain
// lines on stdout, and operators reading function logs, who get leveled zap
// output on stderr. One atomic level governs the zap side, so a level change
// applies to every logger already handed out.
package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/awantoch/edgebridge/constants"
)

var (
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	mu    sync.RWMutex
	user  = log.New(os.Stdout, "", 0)
	sugar = build(os.Stderr)
)

type instanceIDKey struct{}

func init() {
	if debugForced() {
		level.SetLevel(zapcore.DebugLevel)
	}
}

// debugForced reports whether EDGEBRIDGE_DEBUG pins the level to debug.
func debugForced() bool {
	return os.Getenv(constants.EnvDebug) != ""
}

func build(w io.Writer) *zap.SugaredLogger {
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core).Sugar()
}

func internal() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// SetLevel applies a configured level (debug, info, warn, error). EDGEBRIDGE_DEBUG
// keeps debug output on regardless.
func SetLevel(name string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return fmt.Errorf("log level %q: %w", name, err)
	}
	if debugForced() {
		lvl = zapcore.DebugLevel
	}
	level.SetLevel(lvl)
	return nil
}

// SetUserOutput redirects CLI output; nil restores stdout.
func SetUserOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	mu.Lock()
	defer mu.Unlock()
	user = log.New(w, "", 0)
}

// SetOutput redirects leveled logs; nil restores stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	l := build(w)
	mu.Lock()
	defer mu.Unlock()
	sugar = l
}

// User prints a line for the person running the CLI.
func User(format string, v ...any) {
	mu.RLock()
	defer mu.RUnlock()
	user.Printf(format, v...)
}

func Info(format string, v ...any)  { internal().Infof(format, v...) }
func Warn(format string, v ...any)  { internal().Warnf(format, v...) }
func Error(format string, v ...any) { internal().Errorf(format, v...) }
func Debug(format string, v ...any) { internal().Debugf(format, v...) }

// WithInstanceID tags ctx with the function instance ID picked up by the *Ctx loggers.
func WithInstanceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, instanceIDKey{}, id)
}

// InstanceIDFromContext returns the instance ID set by WithInstanceID.
func InstanceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(instanceIDKey{}).(string)
	return id, ok
}

func fieldsFrom(ctx context.Context, kv []any) []any {
	if id, ok := InstanceIDFromContext(ctx); ok {
		kv = append(kv, "instance_id", id)
	}
	return kv
}

// InfoCtx logs msg with key/value pairs plus the context's instance ID.
func InfoCtx(ctx context.Context, msg string, kv ...any) {
	internal().Infow(msg, fieldsFrom(ctx, kv)...)
}

// DebugCtx is InfoCtx at debug level.
func DebugCtx(ctx context.Context, msg string, kv ...any) {
	internal().Debugw(msg, fieldsFrom(ctx, kv)...)
}
