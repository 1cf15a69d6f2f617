package mcpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fut-draft/internal/domain/draft"
	"github.com/riskibarqy/fut-draft/internal/domain/formation"
	"github.com/riskibarqy/fut-draft/internal/domain/manager"
	"github.com/riskibarqy/fut-draft/internal/domain/player"
	"github.com/riskibarqy/fut-draft/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fut-draft/internal/platform/id"
	"github.com/riskibarqy/fut-draft/internal/platform/logging"
	"github.com/riskibarqy/fut-draft/internal/usecase"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	players := memory.NewPlayerRepository([]player.Player{
		{ID: 1, Name: "Keeper", Position: "GK", Rating: 80, Club: "Alpha"},
		{ID: 2, Name: "Striker", Position: "ST", Rating: 90, Club: "Beta"},
	})
	managers := memory.NewManagerRepository([]manager.Manager{{ID: 7, Name: "Coach"}})
	formations := memory.NewFormationRepository([]formation.Formation{
		{ID: "mini", Name: "Mini", Slots: []string{"GK", "ST"}},
	})

	cfg := usecase.DraftConfig{
		Rules:            draft.Rules{CandidatePoolSize: 5},
		FormationOptions: 3,
	}
	draftSvc := usecase.NewDraftService(players, managers, formations, cfg,
		id.NewSequence("draft-1", "draft-2"), nil, logging.NewNop())
	catalogSvc := usecase.NewCatalogService(players, managers, formations)
	return NewServer(draftSvc, catalogSvc, logging.NewNop(), "test")
}

func connect(t *testing.T, s *Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := s.MCP().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func call(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()
	if args == nil {
		args = map[string]any{}
	}

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text, res.IsError
}

func TestListTools(t *testing.T) {
	s := newTestServer(t)
	session := connect(t, s)

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	for _, want := range []string{
		"draft_state", "draft_formation_options", "draft_select_formation", "draft_captain_candidates",
		"draft_select_captain", "draft_open_slot", "draft_pick", "draft_cancel_pick", "draft_summary",
		"draft_reset", "catalog_search_players",
	} {
		assert.Contains(t, names, want)
	}
	assert.Len(t, s.Tools(), len(res.Tools))
}

func TestDraftThroughTools(t *testing.T) {
	session := connect(t, newTestServer(t))

	text, isErr := call(t, session, "draft_pick", map[string]any{"candidate_id": 1})
	require.True(t, isErr)
	assert.True(t, strings.HasPrefix(text, "error: invalid_transition"), text)

	_, isErr = call(t, session, "draft_select_formation", map[string]any{"formation_id": "mini"})
	require.False(t, isErr)

	_, isErr = call(t, session, "draft_select_captain", map[string]any{"player_id": 1})
	require.False(t, isErr)

	text, isErr = call(t, session, "draft_open_slot", map[string]any{"slot_id": "GK"})
	require.True(t, isErr)
	assert.Contains(t, text, "slot_occupied")

	text, isErr = call(t, session, "draft_open_slot", map[string]any{"slot_id": "ST"})
	require.False(t, isErr)
	var state stateView
	require.NoError(t, sonic.UnmarshalString(text, &state))
	require.Len(t, state.PlayerCandidates, 1)
	assert.Equal(t, 2, state.PlayerCandidates[0].ID)

	_, isErr = call(t, session, "draft_pick", map[string]any{"candidate_id": 2})
	require.False(t, isErr)
	_, isErr = call(t, session, "draft_open_slot", map[string]any{"slot_id": draft.ManagerSlot})
	require.False(t, isErr)

	text, isErr = call(t, session, "draft_pick", map[string]any{"candidate_id": 7})
	require.False(t, isErr)
	require.NoError(t, sonic.UnmarshalString(text, &state))
	assert.True(t, state.Complete)
	assert.Empty(t, state.OpenSlots)

	text, isErr = call(t, session, "draft_summary", nil)
	require.False(t, isErr)
	var summary summaryView
	require.NoError(t, sonic.UnmarshalString(text, &summary))
	assert.Equal(t, 85, summary.Rating)
	assert.Equal(t, 50, summary.Chemistry)
	assert.Contains(t, summary.Highlights, "goalkeeper")

	text, isErr = call(t, session, "draft_reset", nil)
	require.False(t, isErr)
	require.NoError(t, sonic.UnmarshalString(text, &state))
	assert.Equal(t, "draft-2", state.ID)
	assert.Equal(t, string(draft.PhaseAwaitingFormation), state.Phase)
}

func TestCatalogSearchTool(t *testing.T) {
	session := connect(t, newTestServer(t))

	text, isErr := call(t, session, "catalog_search_players", map[string]any{"position": "gk"})
	require.False(t, isErr)

	var page struct {
		Items []playerView `json:"items"`
		Total int          `json:"total"`
	}
	require.NoError(t, sonic.UnmarshalString(text, &page))
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Keeper", page.Items[0].Name)

	text, isErr = call(t, session, "catalog_search_players", map[string]any{"page_size": 500})
	require.True(t, isErr)
	assert.Contains(t, text, "invalid_input")
}

func TestHandler_HealthRequiresKey(t *testing.T) {
	handler := newTestServer(t).Handler("/mcp", "secret")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
