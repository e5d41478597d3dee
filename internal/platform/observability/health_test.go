package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestServer_Healthz(t *testing.T) {
	logger := zerolog.Nop()
	h := NewServer(0, func() bool { return false }, &logger).Handler()

	rec := serve(t, h, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestServer_Readyz(t *testing.T) {
	logger := zerolog.Nop()
	ready := false
	h := NewServer(0, func() bool { return ready }, &logger).Handler()

	rec := serve(t, h, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	ready = true

	rec = serve(t, h, "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_Metrics(t *testing.T) {
	logger := zerolog.Nop()
	h := NewServer(0, nil, &logger).Handler()

	CatalogEntries.Set(42)

	rec := serve(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "catalog_entries 42")
}
