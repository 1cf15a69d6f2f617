package mcpapi

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

const apiKeyHeader = "X-API-Key"

// RequireAPIKey accepts the key from X-API-Key or a bearer token. An empty apiKey disables the check.
func RequireAPIKey(apiKey string, next http.Handler) http.Handler {
	apiKey = strings.TrimSpace(apiKey)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		key := strings.TrimSpace(r.Header.Get(apiKeyHeader))
		if key == "" {
			if token, ok := bearerToken(r.Header.Get("Authorization")); ok {
				key = token
			}
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
