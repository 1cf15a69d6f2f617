// Package mcpapi exposes the draft engine as Model Context Protocol tools.
package mcpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/riskibarqy/fut-draft/internal/domain/draft"
	"github.com/riskibarqy/fut-draft/internal/domain/player"
	"github.com/riskibarqy/fut-draft/internal/platform/logging"
	"github.com/riskibarqy/fut-draft/internal/usecase"
)

const implementationName = "fut-draft-mcp"

type emptyArgs struct{}

type selectFormationArgs struct {
	FormationID string `json:"formation_id" jsonschema:"Formation id from draft_formation_options (required)"`
}

type selectCaptainArgs struct {
	PlayerID int `json:"player_id" jsonschema:"Player id from draft_captain_candidates (required)"`
}

type openSlotArgs struct {
	SlotID string `json:"slot_id" jsonschema:"Slot id such as GK, CB1, SUB3, RES1 or DT (required)"`
}

type pickArgs struct {
	CandidateID int `json:"candidate_id" jsonschema:"Id of one of the offered candidates (required)"`
}

type searchPlayersArgs struct {
	Position    string `json:"position,omitempty" jsonschema:"Primary or alternative position code"`
	Club        string `json:"club,omitempty" jsonschema:"Club name, case insensitive"`
	League      string `json:"league,omitempty" jsonschema:"League name, case insensitive"`
	Nationality string `json:"nationality,omitempty" jsonschema:"Nationality, case insensitive"`
	Page        int    `json:"page,omitempty" jsonschema:"1-based page (default 1)"`
	PageSize    int    `json:"page_size,omitempty" jsonschema:"Page size (default 20, max 100)"`
}

type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Server struct {
	draftService   *usecase.DraftService
	catalogService *usecase.CatalogService
	logger         *logging.Logger
	server         *mcp.Server
	registry       []ToolInfo
}

func NewServer(
	draftService *usecase.DraftService,
	catalogService *usecase.CatalogService,
	logger *logging.Logger,
	version string,
) *Server {
	if logger == nil {
		logger = logging.Default()
	}
	if version == "" {
		version = "dev"
	}

	s := &Server{
		draftService:   draftService,
		catalogService: catalogService,
		logger:         logger,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    implementationName,
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

// MCP returns the underlying protocol server, mainly for in-memory transports.
func (s *Server) MCP() *mcp.Server {
	return s.server
}

func (s *Server) Tools() []ToolInfo {
	return append([]ToolInfo(nil), s.registry...)
}

// Handler serves the streamable HTTP transport at path and a health probe, both behind apiKey.
func (s *Server) Handler(path, apiKey string) http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	mux := http.NewServeMux()
	mux.Handle(path, RequireAPIKey(apiKey, streamable))
	mux.Handle("GET /healthz", RequireAPIKey(apiKey, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})))
	return mux
}

func (s *Server) registerTools() {
	addTool(s, &mcp.Tool{
		Name:        "draft_state",
		Description: "Current draft: phase, slots with their assignments, open slots and any pending candidate pool",
	}, func(ctx context.Context, _ emptyArgs) (any, error) {
		return toStateView(s.draftService.State(ctx)), nil
	})

	addTool(s, &mcp.Tool{
		Name:        "draft_formation_options",
		Description: "Random selection of formations to start the draft with",
	}, func(ctx context.Context, _ emptyArgs) (any, error) {
		items, err := s.draftService.FormationOptions(ctx)
		if err != nil {
			return nil, err
		}
		return toFormationViews(items), nil
	})

	addTool(s, &mcp.Tool{
		Name:        "draft_select_formation",
		Description: "Choose the formation; allowed until a captain is selected",
	}, func(ctx context.Context, args selectFormationArgs) (any, error) {
		snap, err := s.draftService.SelectFormation(ctx, args.FormationID)
		if err != nil {
			return nil, err
		}
		return toStateView(snap), nil
	})

	addTool(s, &mcp.Tool{
		Name:        "draft_captain_candidates",
		Description: "Players offered as captain for the chosen formation",
	}, func(ctx context.Context, _ emptyArgs) (any, error) {
		items, err := s.draftService.CaptainCandidates(ctx)
		if err != nil {
			return nil, err
		}
		return toPlayerViews(items), nil
	})

	addTool(s, &mcp.Tool{
		Name:        "draft_select_captain",
		Description: "Pick the captain; it is placed into the first matching starting slot",
	}, func(ctx context.Context, args selectCaptainArgs) (any, error) {
		snap, err := s.draftService.SelectCaptain(ctx, args.PlayerID)
		if err != nil {
			return nil, err
		}
		return toStateView(snap), nil
	})

	addTool(s, &mcp.Tool{
		Name:        "draft_open_slot",
		Description: "Open an empty slot and receive up to five eligible candidates",
	}, func(ctx context.Context, args openSlotArgs) (any, error) {
		snap, err := s.draftService.OpenSlot(ctx, args.SlotID)
		if err != nil {
			return nil, err
		}
		return toStateView(snap), nil
	})

	addTool(s, &mcp.Tool{
		Name:        "draft_pick",
		Description: "Assign one of the offered candidates to the open slot",
	}, func(ctx context.Context, args pickArgs) (any, error) {
		snap, err := s.draftService.Pick(ctx, args.CandidateID)
		if err != nil {
			return nil, err
		}
		return toStateView(snap), nil
	})

	addTool(s, &mcp.Tool{
		Name:        "draft_cancel_pick",
		Description: "Close the open slot without assigning anyone",
	}, func(ctx context.Context, _ emptyArgs) (any, error) {
		snap, err := s.draftService.CancelPick(ctx)
		if err != nil {
			return nil, err
		}
		return toStateView(snap), nil
	})

	addTool(s, &mcp.Tool{
		Name:        "draft_summary",
		Description: "Average rating, chemistry, stars and highlight players of the current squad",
	}, func(ctx context.Context, _ emptyArgs) (any, error) {
		return toSummaryView(s.draftService.Summary(ctx)), nil
	})

	addTool(s, &mcp.Tool{
		Name:        "draft_reset",
		Description: "Discard the draft and start an empty one",
	}, func(ctx context.Context, _ emptyArgs) (any, error) {
		return toStateView(s.draftService.Reset(ctx)), nil
	})

	addTool(s, &mcp.Tool{
		Name:        "catalog_search_players",
		Description: "Browse the player catalog by position, club, league or nationality",
	}, func(ctx context.Context, args searchPlayersArgs) (any, error) {
		page, err := s.catalogService.ListPlayers(ctx, usecase.ListPlayersInput{
			Page:     args.Page,
			PageSize: args.PageSize,
			Filter: player.Filter{
				Position:    args.Position,
				Club:        args.Club,
				League:      args.League,
				Nationality: args.Nationality,
			},
		})
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"items":       toPlayerViews(page.Items),
			"page":        page.Page,
			"total":       page.Total,
			"total_pages": page.TotalPages,
		}, nil
	})
}

// addTool adapts a plain handler into an MCP tool. Errors become error results so the model can
// read the reason and retry with other arguments.
func addTool[T any](s *Server, tool *mcp.Tool, handler func(context.Context, T) (any, error)) {
	s.registry = append(s.registry, ToolInfo{Name: tool.Name, Description: tool.Description})
	name := tool.Name

	mcp.AddTool(s.server, tool, func(ctx context.Context, _ *mcp.CallToolRequest, args T) (*mcp.CallToolResult, any, error) {
		out, err := handler(ctx, args)
		if err != nil {
			s.logger.WarnContext(ctx, "mcp tool failed", "tool", name, "reason", errorReason(err), "error", err)
			return toolError(err), nil, nil
		}
		return toolJSON(out), nil, nil
	})
}

func toolJSON(payload any) *mcp.CallToolResult {
	raw, err := sonic.Marshal(payload)
	if err != nil {
		return toolError(fmt.Errorf("encode result: %w", err))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(raw)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %s: %v", errorReason(err), err)},
		},
	}
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, usecase.ErrNotFound):
		return "not_found"
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return "dependency_unavailable"
	case errors.Is(err, draft.ErrUnknownSlot):
		return "unknown_slot"
	case errors.Is(err, draft.ErrDuplicateAssignment):
		return "duplicate_assignment"
	case errors.Is(err, draft.ErrSlotOccupied):
		return "slot_occupied"
	case errors.Is(err, draft.ErrCandidateNotOffered):
		return "candidate_not_offered"
	case errors.Is(err, draft.ErrInvalidTransition):
		return "invalid_transition"
	default:
		return "internal"
	}
}
