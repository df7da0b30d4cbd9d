package registry

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterGet(t *testing.T) {
	r := New()
	_, err := r.Get("app")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotRegistered)
	assert.True(t, IsResolution(err))

	app := http.NewServeMux()
	r.Register("app", Handler(app))

	f, err := r.Get("app")
	require.NoError(t, err)
	got, err := f(context.Background(), Env{})
	require.NoError(t, err)
	assert.Same(t, app, got)
}

func TestRegistryPanics(t *testing.T) {
	r := New()
	assert.Panics(t, func() { r.Register("", Handler(http.NewServeMux())) })
	assert.Panics(t, func() { r.Register("app", nil) })

	r.Register("app", Handler(http.NewServeMux()))
	assert.Panics(t, func() { r.Register("app", Handler(http.NewServeMux())) })
}

func TestRegistryNames(t *testing.T) {
	r := New()
	assert.Empty(t, r.Names())

	r.Register("web", Handler(http.NewServeMux()))
	r.Register("admin", Handler(http.NewServeMux()))
	assert.Equal(t, []string{"admin", "web"}, r.Names())
}

func TestRegistryConcurrentRegister(t *testing.T) {
	r := New()
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			r.Register(name, Handler(http.NewServeMux()))
			_, _ = r.Get(name)
		}(name)
	}
	wg.Wait()
	assert.Equal(t, names, r.Names())
}

func TestFactoryReceivesEnv(t *testing.T) {
	r := New()
	var seen Env
	r.Register("app", func(_ context.Context, env Env) (http.Handler, error) {
		seen = env
		return http.NewServeMux(), nil
	})
	f, err := r.Get("app")
	require.NoError(t, err)
	_, err = f(context.Background(), Env{AdapterDir: "/a/api", BackendDir: "/a/backend", InstanceID: "id"})
	require.NoError(t, err)
	assert.Equal(t, "/a/backend", seen.BackendDir)
	assert.Equal(t, "id", seen.InstanceID)
}

func TestIsResolution(t *testing.T) {
	assert.True(t, IsResolution(ErrNilApplication))
	assert.False(t, IsResolution(context.Canceled))
	assert.False(t, IsResolution(nil))
}
