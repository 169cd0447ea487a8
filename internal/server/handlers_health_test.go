package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, &mockAnalyzer{}, &mockCatalog{}, nil)

	rec := perform(srv, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","message":"Backend is running"}`, rec.Body.String())
}

func TestHandleVersion(t *testing.T) {
	srv := newTestServer(t, &mockAnalyzer{}, &mockCatalog{}, nil)

	rec := perform(srv, http.MethodGet, "/version", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Contains(t, payload, "version")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, &mockAnalyzer{}, &mockCatalog{}, nil)

	rec := perform(srv, http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
