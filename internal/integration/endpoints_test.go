package integration

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/motix/motix/internal/dtos"
)

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dtos.HealthCheckResponse
	decode(t, resp, &body)
	assert.Equal(t, "ok", body.Status)
}

func TestWritesRejectedWithoutKey(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/api/v1/sectors", map[string]string{"code": "A"}, false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "API Key missing", errorOf(t, resp))
}

func TestWritesRejectedWithWrongKey(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/sectors", nil)
	req.Header.Set("X-API-KEY", "not-the-key")
	resp, err := srv.Client().Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid API Key", errorOf(t, resp))
}

func TestReadsPassWithoutKey(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/v1/sectors", "/api/v1/motorcycles", "/api/v1/movements"} {
		resp := do(t, srv, http.MethodGet, path, nil, false)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestMetricsExposed(t *testing.T) {
	srv := newTestServer(t)

	// ensure at least one labelled sample exists before scraping
	do(t, srv, http.MethodGet, "/health", nil, false)

	resp := do(t, srv, http.MethodGet, "/metrics", nil, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "motix_http_requests_total")
}
