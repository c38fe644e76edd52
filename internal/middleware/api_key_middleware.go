package middleware

import (
	"net/http"
	"strings"

	"github.com/motix/motix/internal/config"
	"github.com/motix/motix/internal/metrics"
	"github.com/motix/motix/internal/utils"
)

const APIKeyHeader = "X-API-KEY"

// APIKeyAuth gates write verbs on versioned API paths behind the shared
// secret. Reads, health and metrics pass through untouched, so handlers
// never observe an unauthorized write.
//
//	/health, /metrics          any verb   → pass
//	/api/v* GET                           → pass
//	/api/v* POST/PUT/DELETE/PATCH         → require X-API-KEY
//	anything else                         → pass
func APIKeyAuth(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isVersionedAPI(r.URL.Path) || !isWrite(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get(APIKeyHeader)
			if key == "" {
				metrics.AuthRejections.WithLabelValues("missing").Inc()
				utils.RespondError(w, http.StatusUnauthorized, "API Key missing")
				return
			}
			// cfg.APIKey is read per request so an external reload can
			// rotate it; an empty configured secret rejects every write
			if cfg.APIKey == "" || key != cfg.APIKey {
				metrics.AuthRejections.WithLabelValues("invalid").Inc()
				utils.RespondError(w, http.StatusUnauthorized, "Invalid API Key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isVersionedAPI(path string) bool {
	return strings.HasPrefix(path, "/api/v")
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch:
		return true
	}
	return false
}
