package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awantoch/edgebridge/constants"
	"github.com/awantoch/edgebridge/registry"
)

func TestRegisteredUnderDefaultName(t *testing.T) {
	assert.Contains(t, registry.Names(), constants.DefaultAppName)
}

func TestNew(t *testing.T) {
	h, err := New(context.Background(), registry.Env{BackendDir: "/srv/backend", InstanceID: "inst-1"})
	require.NoError(t, err)

	app, ok := h.(*App)
	require.True(t, ok)
	assert.Equal(t, "/srv/backend", app.Dir())
	assert.Equal(t, "inst-1", app.InstanceID())
}

func TestHealthz(t *testing.T) {
	h, err := New(context.Background(), registry.Env{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, constants.PathHealthz, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constants.ContentTypeJSON, rec.Header().Get(constants.HeaderContentType))
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestVersion(t *testing.T) {
	h, err := New(context.Background(), registry.Env{InstanceID: "inst-2"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, constants.PathVersion, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, Version, body["version"])
	assert.Equal(t, "inst-2", body["instance_id"])
}

func TestUnknownPath(t *testing.T) {
	h, err := New(context.Background(), registry.Env{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
