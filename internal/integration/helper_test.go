package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/motix/motix/internal/app"
	"github.com/motix/motix/internal/config"
	"github.com/motix/motix/internal/repositories"
)

const testAPIKey = "integration-test-key"

// newTestServer spins up the full router over the in-memory store, so the
// tests exercise the real middleware chain and handlers end to end.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		AppName:  config.AppName,
		APIKey:   testAPIKey,
		DBDriver: config.DriverMemory,
	}
	a := app.NewAppWithStore(cfg, repositories.NewMemoryStore())
	srv := httptest.NewServer(app.NewRouter(a))
	t.Cleanup(srv.Close)
	return srv
}

// do issues a request against the test server. A non-nil body is encoded
// as JSON; withKey attaches the valid API key.
func do(t *testing.T, srv *httptest.Server, method, path string, body any, withKey bool) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withKey {
		req.Header.Set("X-API-KEY", testAPIKey)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func errorOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]string
	decode(t, resp, &body)
	return body["error"]
}
