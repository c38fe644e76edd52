package utils

import "net/http"

// BaseURL reconstructs the request's base address, honoring
// X-Forwarded-Proto when the service sits behind a proxy.
func BaseURL(r *http.Request) string {
	scheme := r.Header.Get("X-Forwarded-Proto")
	if scheme == "" {
		if r.TLS != nil {
			scheme = "https"
		} else {
			scheme = "http"
		}
	}
	return scheme + "://" + r.Host
}
