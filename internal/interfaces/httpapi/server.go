package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fut-draft/internal/metrics"
	"github.com/riskibarqy/fut-draft/internal/platform/logging"
)

type RouterOptions struct {
	SwaggerEnabled     bool
	MetricsEnabled     bool
	CORSAllowedOrigins []string
}

func NewRouter(handler *Handler, recorder *metrics.Recorder, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts, recorder)
	registerCatalogRoutes(mux, handler)
	registerDraftRoutes(mux, handler)

	return RequestTracing(
		RequestLogging(logger,
			CORS(opts.CORSAllowedOrigins,
				recoverPanic(logger,
					RequestMetrics(recorder, mux)))))
}
