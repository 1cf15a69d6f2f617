package httpapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fut-draft/internal/domain/draft"
	"github.com/riskibarqy/fut-draft/internal/domain/formation"
	"github.com/riskibarqy/fut-draft/internal/domain/manager"
	"github.com/riskibarqy/fut-draft/internal/domain/player"
	"github.com/riskibarqy/fut-draft/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fut-draft/internal/metrics"
	"github.com/riskibarqy/fut-draft/internal/platform/id"
	"github.com/riskibarqy/fut-draft/internal/platform/logging"
	"github.com/riskibarqy/fut-draft/internal/usecase"
)

type envelope[T any] struct {
	APIVersion string `json:"apiVersion"`
	Data       T      `json:"data"`
	Error      *struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
		Errors []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

func newTestRouter(t *testing.T, recorder *metrics.Recorder) http.Handler {
	t.Helper()

	players := memory.NewPlayerRepository([]player.Player{
		{ID: 1, Name: "Keeper", Position: "GK", Rating: 80, Club: "Alpha"},
		{ID: 2, Name: "Striker", Position: "ST", Rating: 90, Club: "Alpha"},
		{ID: 3, Name: "Backup Striker", Position: "ST", Rating: 70, Club: "Beta"},
	})
	managers := memory.NewManagerRepository([]manager.Manager{{ID: 1, Name: "Coach"}})
	formations := memory.NewFormationRepository([]formation.Formation{
		{ID: "mini", Name: "Mini", Slots: []string{"GK", "ST"}},
		{ID: "twin", Name: "Twin", Slots: []string{"ST", "ST2"}},
	})

	cfg := usecase.DraftConfig{
		Rules:            draft.Rules{SubstituteSlots: 0, ReserveSlots: 0, CandidatePoolSize: 5},
		FormationOptions: 5,
	}
	draftSvc := usecase.NewDraftService(players, managers, formations, cfg,
		id.NewSequence("draft-1", "draft-2"), recorder, logging.NewNop())
	catalogSvc := usecase.NewCatalogService(players, managers, formations)

	handler := NewHandler(draftSvc, catalogSvc, logging.NewNop())
	return NewRouter(handler, recorder, logging.NewNop(), RouterOptions{
		SwaggerEnabled:     true,
		MetricsEnabled:     recorder != nil,
		CORSAllowedOrigins: []string{"*"},
	})
}

func do[T any](t *testing.T, router http.Handler, method, path, body string) (int, envelope[T]) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out envelope[T]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	require.Equal(t, "2.0", out.APIVersion)
	return rec.Code, out
}

func errorReason[T any](env envelope[T]) string {
	if env.Error == nil || len(env.Error.Errors) == 0 {
		return ""
	}
	return env.Error.Errors[0].Reason
}

func TestDraftFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t, nil)

	code, state := do[draftDTO](t, router, http.MethodGet, "/v1/draft", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "draft-1", state.Data.ID)
	assert.Equal(t, string(draft.PhaseAwaitingFormation), state.Data.Phase)

	code, state = do[draftDTO](t, router, http.MethodPut, "/v1/draft/formation", `{"formation_id":"mini"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, string(draft.PhaseAwaitingCaptain), state.Data.Phase)
	assert.Equal(t, []string{"GK", "ST"}, state.Data.Layout)

	code, captains := do[[]playerDTO](t, router, http.MethodGet, "/v1/draft/captain-candidates", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, captains.Data, 3)

	code, state = do[draftDTO](t, router, http.MethodPut, "/v1/draft/captain", `{"player_id":2}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, string(draft.PhaseBuilding), state.Data.Phase)
	assert.Equal(t, "ST", state.Data.CaptainSlot)

	code, failed := do[draftDTO](t, router, http.MethodPost, "/v1/draft/slots/ST/candidates", "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "slotOccupied", errorReason(failed))

	code, state = do[draftDTO](t, router, http.MethodPost, "/v1/draft/slots/GK/candidates", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "GK", state.Data.PickingSlot)
	require.Len(t, state.Data.PlayerCandidates, 1)
	assert.Equal(t, 1, state.Data.PlayerCandidates[0].ID)

	code, state = do[draftDTO](t, router, http.MethodPost, "/v1/draft/picks", `{"candidate_id":1}`)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, state.Data.PickingSlot)
	assert.False(t, state.Data.Complete)

	code, state = do[draftDTO](t, router, http.MethodPost, "/v1/draft/slots/DT/candidates", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, state.Data.ManagerCandidates, 1)

	code, state = do[draftDTO](t, router, http.MethodPost, "/v1/draft/picks", `{"candidate_id":1}`)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, state.Data.Complete)
	assert.Equal(t, string(draft.PhaseComplete), state.Data.Phase)
	assert.NotEmpty(t, state.Data.CompletedAt)
	require.NotNil(t, state.Data.Manager)
	assert.Equal(t, "Coach", state.Data.Manager.Name)

	code, summary := do[summaryDTO](t, router, http.MethodGet, "/v1/draft/summary", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, summary.Data.Players)
	assert.Equal(t, 85, summary.Data.Rating)
	assert.Equal(t, 100, summary.Data.Chemistry)
	require.NotNil(t, summary.Data.Highlights.Goalkeeper)
	require.NotNil(t, summary.Data.Highlights.Attacker)
	assert.Equal(t, 2, summary.Data.Highlights.Attacker.ID)

	code, state = do[draftDTO](t, router, http.MethodDelete, "/v1/draft", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "draft-2", state.Data.ID)
	assert.Equal(t, string(draft.PhaseAwaitingFormation), state.Data.Phase)
	assert.Empty(t, state.Data.Layout)
}

func TestDraftErrorsOverHTTP(t *testing.T) {
	router := newTestRouter(t, nil)

	t.Run("pick before anything is open", func(t *testing.T) {
		code, env := do[draftDTO](t, router, http.MethodPost, "/v1/draft/picks", `{"candidate_id":1}`)
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "invalidTransition", errorReason(env))
	})

	t.Run("invalid json", func(t *testing.T) {
		code, env := do[draftDTO](t, router, http.MethodPut, "/v1/draft/formation", `{"formation_id":`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "invalidInput", errorReason(env))
	})

	t.Run("missing body", func(t *testing.T) {
		code, env := do[draftDTO](t, router, http.MethodPut, "/v1/draft/captain", "")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "invalidInput", errorReason(env))
	})

	t.Run("validation failure", func(t *testing.T) {
		code, env := do[draftDTO](t, router, http.MethodPost, "/v1/draft/picks", `{"candidate_id":0}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "invalidInput", errorReason(env))
	})

	code, _ := do[draftDTO](t, router, http.MethodPut, "/v1/draft/formation", `{"formation_id":"twin"}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = do[draftDTO](t, router, http.MethodPut, "/v1/draft/captain", `{"player_id":2}`)
	require.Equal(t, http.StatusOK, code)

	t.Run("unknown slot", func(t *testing.T) {
		code, env := do[draftDTO](t, router, http.MethodPost, "/v1/draft/slots/LW/candidates", "")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "unknownSlot", errorReason(env))
	})

	t.Run("candidate outside the pool", func(t *testing.T) {
		code, state := do[draftDTO](t, router, http.MethodPost, "/v1/draft/slots/ST2/candidates", "")
		require.Equal(t, http.StatusOK, code)
		require.Len(t, state.Data.PlayerCandidates, 1)
		assert.Equal(t, 3, state.Data.PlayerCandidates[0].ID)

		code, env := do[draftDTO](t, router, http.MethodPost, "/v1/draft/picks", `{"candidate_id":2}`)
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "candidateNotOffered", errorReason(env))
	})

	t.Run("cancel pick", func(t *testing.T) {
		code, state := do[draftDTO](t, router, http.MethodDelete, "/v1/draft/picks", "")
		require.Equal(t, http.StatusOK, code)
		assert.Empty(t, state.Data.PickingSlot)
		assert.Empty(t, state.Data.PlayerCandidates)

		code, env := do[draftDTO](t, router, http.MethodDelete, "/v1/draft/picks", "")
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "invalidTransition", errorReason(env))
	})

	t.Run("unknown captain", func(t *testing.T) {
		code, env := do[draftDTO](t, router, http.MethodPut, "/v1/draft/captain", `{"player_id":404}`)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "notFound", errorReason(env))
	})
}

func TestCatalogOverHTTP(t *testing.T) {
	router := newTestRouter(t, nil)

	t.Run("players page with position filter", func(t *testing.T) {
		code, page := do[playerPageDTO](t, router, http.MethodGet, "/v1/players?position=st&page_size=1", "")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, 2, page.Data.Total)
		assert.Equal(t, 2, page.Data.TotalPages)
		require.Len(t, page.Data.Items, 1)
		assert.Equal(t, 2, page.Data.Items[0].ID)
	})

	t.Run("bad page", func(t *testing.T) {
		code, env := do[playerPageDTO](t, router, http.MethodGet, "/v1/players?page=abc", "")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "invalidInput", errorReason(env))
	})

	t.Run("player by id", func(t *testing.T) {
		code, item := do[playerDTO](t, router, http.MethodGet, "/v1/players/3", "")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Backup Striker", item.Data.Name)
		assert.NotNil(t, item.Data.PositionAlternatives)

		code, _ = do[playerDTO](t, router, http.MethodGet, "/v1/players/99", "")
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("formations and managers", func(t *testing.T) {
		code, items := do[[]formationDTO](t, router, http.MethodGet, "/v1/formations", "")
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, items.Data, 2)

		code, one := do[formationDTO](t, router, http.MethodGet, "/v1/formations/twin", "")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, []string{"ST", "ST2"}, one.Data.Slots)

		code, managers := do[[]managerDTO](t, router, http.MethodGet, "/v1/managers", "")
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, managers.Data, 1)
	})

	t.Run("formation options", func(t *testing.T) {
		code, items := do[[]formationDTO](t, router, http.MethodGet, "/v1/draft/formation-options", "")
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, items.Data, 2)
	})
}

func TestSystemRoutes(t *testing.T) {
	recorder := metrics.New()
	router := newTestRouter(t, recorder)

	code, health := do[map[string]string](t, router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", health.Data["status"])

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `fut_http_requests_total{method="GET",route="GET /healthz",status_code="200"} 1`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/v1/draft/picks")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swagger-ui")
}
