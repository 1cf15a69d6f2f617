package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/riskibarqy/fut-draft/internal/metrics"
	"github.com/riskibarqy/fut-draft/internal/platform/logging"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestCORS(t *testing.T) {
	handler := CORS([]string{" https://draft.example.com ", ""}, okHandler())

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/draft", nil)
		req.Header.Set("Origin", "https://draft.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "https://draft.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disallowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/draft", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/draft/picks", nil)
		req.Header.Set("Origin", "https://draft.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://draft.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
	})
}

func TestRequestMetrics_UsesRoutePattern(t *testing.T) {
	recorder := metrics.New()
	mux := http.NewServeMux()
	mux.Handle("POST /v1/draft/slots/{slotID}/candidates", okHandler())
	handler := RequestMetrics(recorder, mux)

	for _, path := range []string{"/v1/draft/slots/GK/candidates", "/v1/draft/slots/ST/candidates"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, path, nil))
	}
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	rec := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `fut_http_requests_total{method="POST",route="POST /v1/draft/slots/{slotID}/candidates",status_code="204"} 2`)
	assert.Contains(t, body, `fut_http_requests_total{method="GET",route="unmatched",status_code="404"} 1`)
}

func TestRequestMetrics_NilRecorderPassesThrough(t *testing.T) {
	next := okHandler()
	handler := RequestMetrics(nil, next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := logging.FromZap(zap.New(core))

	handler := RequestLogging(logger, okHandler())
	req := httptest.NewRequest(http.MethodGet, "/v1/draft", nil)
	req.RemoteAddr = "10.0.0.8:5123"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/v1/draft", fields["path"])
	assert.EqualValues(t, http.StatusNoContent, fields["status"])
	assert.Equal(t, "10.0.0.8", fields["client_ip"])
}

func TestRecoverPanic(t *testing.T) {
	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/draft", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internalError")
}

func TestNormalizeIP(t *testing.T) {
	tests := map[string]string{
		"":                        "",
		"203.0.113.7":             "203.0.113.7",
		"203.0.113.7, 10.0.0.1":   "203.0.113.7",
		"198.51.100.2:443":        "198.51.100.2",
		"[2001:db8::1]:8080":      "2001:db8::1",
		"::ffff:192.0.2.1":        "192.0.2.1",
		"not-an-ip":               "",
		" 192.0.2.9 ,192.0.2.10 ": "192.0.2.9",
	}
	for raw, want := range tests {
		if got := normalizeIP(raw); got != want {
			t.Fatalf("normalizeIP(%q): expected %q, got %q", raw, want, got)
		}
	}
}

func TestClientIP_PrefersForwardedHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Real-IP", "192.0.2.50")
	if got := clientIP(req); got != "192.0.2.50" {
		t.Fatalf("expected X-Real-IP, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "198.51.100.9, 10.0.0.3")
	if got := clientIP(req); got != "198.51.100.9" {
		t.Fatalf("expected X-Forwarded-For, got %q", got)
	}
}
