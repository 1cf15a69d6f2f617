package httpapi

import (
	"net/http"
)

func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetDraft")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, draftToDTO(h.draftService.State(ctx)))
}

func (h *Handler) ResetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ResetDraft")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, draftToDTO(h.draftService.Reset(ctx)))
}

func (h *Handler) ListFormationOptions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListFormationOptions")
	defer span.End()

	items, err := h.draftService.FormationOptions(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationsToDTO(items))
}

func (h *Handler) SelectFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.SelectFormation")
	defer span.End()

	var req selectFormationRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	snap, err := h.draftService.SelectFormation(ctx, req.FormationID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftToDTO(snap))
}

func (h *Handler) ListCaptainCandidates(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListCaptainCandidates")
	defer span.End()

	items, err := h.draftService.CaptainCandidates(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(items))
}

func (h *Handler) SelectCaptain(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.SelectCaptain")
	defer span.End()

	var req selectCaptainRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	snap, err := h.draftService.SelectCaptain(ctx, req.PlayerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftToDTO(snap))
}

func (h *Handler) OpenSlot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.OpenSlot")
	defer span.End()

	snap, err := h.draftService.OpenSlot(ctx, r.PathValue("slotID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftToDTO(snap))
}

func (h *Handler) PickCandidate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.PickCandidate")
	defer span.End()

	var req pickRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	snap, err := h.draftService.Pick(ctx, req.CandidateID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftToDTO(snap))
}

func (h *Handler) CancelPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CancelPick")
	defer span.End()

	snap, err := h.draftService.CancelPick(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftToDTO(snap))
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetSummary")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(h.draftService.Summary(ctx)))
}
