package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fut-draft/internal/metrics"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, opts RouterOptions, recorder *metrics.Recorder) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if opts.MetricsEnabled && recorder != nil {
		mux.Handle("GET /metrics", recorder.Handler())
	}
	if !opts.SwaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/managers", handler.ListManagers)
	mux.HandleFunc("GET /v1/formations", handler.ListFormations)
	mux.HandleFunc("GET /v1/formations/{formationID}", handler.GetFormation)
}

func registerDraftRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/draft", handler.GetDraft)
	mux.HandleFunc("DELETE /v1/draft", handler.ResetDraft)
	mux.HandleFunc("GET /v1/draft/formation-options", handler.ListFormationOptions)
	mux.HandleFunc("PUT /v1/draft/formation", handler.SelectFormation)
	mux.HandleFunc("GET /v1/draft/captain-candidates", handler.ListCaptainCandidates)
	mux.HandleFunc("PUT /v1/draft/captain", handler.SelectCaptain)
	mux.HandleFunc("POST /v1/draft/slots/{slotID}/candidates", handler.OpenSlot)
	mux.HandleFunc("POST /v1/draft/picks", handler.PickCandidate)
	mux.HandleFunc("DELETE /v1/draft/picks", handler.CancelPick)
	mux.HandleFunc("GET /v1/draft/summary", handler.GetSummary)
}
