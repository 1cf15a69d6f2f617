package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/fut-draft/internal/config"
	"github.com/riskibarqy/fut-draft/internal/domain/draft"
	"github.com/riskibarqy/fut-draft/internal/interfaces/httpapi"
	"github.com/riskibarqy/fut-draft/internal/interfaces/mcpapi"
	"github.com/riskibarqy/fut-draft/internal/metrics"
	idgen "github.com/riskibarqy/fut-draft/internal/platform/id"
	"github.com/riskibarqy/fut-draft/internal/platform/logging"
	"github.com/riskibarqy/fut-draft/internal/usecase"
)

// Services is everything a transport needs to serve the draft.
type Services struct {
	Draft   *usecase.DraftService
	Catalog *usecase.CatalogService
	Metrics *metrics.Recorder

	catalog *CatalogRepositories
}

func (s *Services) Close() error {
	if s == nil {
		return nil
	}
	return s.catalog.Close()
}

func DraftConfig(cfg config.Config) usecase.DraftConfig {
	return usecase.DraftConfig{
		Rules: draft.Rules{
			SubstituteSlots:   cfg.DraftSubstituteSlots,
			ReserveSlots:      cfg.DraftReserveSlots,
			CandidatePoolSize: cfg.DraftCandidatePoolSize,
		},
		FormationOptions: cfg.DraftFormationOptions,
	}
}

// NewServices opens the catalog, warms it and builds the draft and catalog services.
func NewServices(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Services, error) {
	repos, err := OpenCatalog(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := WarmCatalog(ctx, repos, cfg.CatalogWarmupWorkers, logger); err != nil {
		_ = repos.Close()
		return nil, err
	}

	var recorder *metrics.Recorder
	if cfg.MetricsEnabled {
		recorder = metrics.New(metrics.WithConstLabels(map[string]string{
			"service_version": cfg.ServiceVersion,
		}))
	}

	draftSvc := usecase.NewDraftService(
		repos.Players,
		repos.Managers,
		repos.Formations,
		DraftConfig(cfg),
		idgen.NewUUIDGenerator(),
		recorder,
		logger.Named("draft"),
	)
	catalogSvc := usecase.NewCatalogService(repos.Players, repos.Managers, repos.Formations)

	return &Services{
		Draft:   draftSvc,
		Catalog: catalogSvc,
		Metrics: recorder,
		catalog: repos,
	}, nil
}

func NewHTTPServer(cfg config.Config, services *Services, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(services.Draft, services.Catalog, logger)
	router := httpapi.NewRouter(handler, services.Metrics, logger.Named("http"), httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		MetricsEnabled:     cfg.MetricsEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

// NewMCPServer serves the draft tools over streamable HTTP. WriteTimeout stays unset so
// streamed responses are not cut off.
func NewMCPServer(cfg config.Config, services *Services, logger *logging.Logger) (*http.Server, error) {
	if cfg.MCPAddr == "" {
		return nil, fmt.Errorf("mcp server addr cannot be empty")
	}

	server := mcpapi.NewServer(services.Draft, services.Catalog, logger.Named("mcp"), cfg.ServiceVersion)
	return &http.Server{
		Addr:        cfg.MCPAddr,
		Handler:     httpapi.RequestTracing(server.Handler(cfg.MCPPath, cfg.MCPAPIKey)),
		ReadTimeout: cfg.ReadTimeout,
	}, nil
}
