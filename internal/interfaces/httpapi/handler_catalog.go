package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/fut-draft/internal/domain/player"
	"github.com/riskibarqy/fut-draft/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListPlayers")
	defer span.End()

	page, err := queryInt(r, "page")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	pageSize, err := queryInt(r, "page_size")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := r.URL.Query()
	result, err := h.catalogService.ListPlayers(ctx, usecase.ListPlayersInput{
		Page:     page,
		PageSize: pageSize,
		Filter: player.Filter{
			Position:    query.Get("position"),
			Club:        query.Get("club"),
			League:      query.Get("league"),
			Nationality: query.Get("nationality"),
		},
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerPageToDTO(result))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := pathInt(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.catalogService.GetPlayer(ctx, playerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) ListManagers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListManagers")
	defer span.End()

	items, err := h.catalogService.ListManagers(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, managersToDTO(items))
}

func (h *Handler) ListFormations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListFormations")
	defer span.End()

	items, err := h.catalogService.ListFormations(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationsToDTO(items))
}

func (h *Handler) GetFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetFormation")
	defer span.End()

	item, err := h.catalogService.GetFormation(ctx, strings.TrimSpace(r.PathValue("formationID")))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationToDTO(item))
}
