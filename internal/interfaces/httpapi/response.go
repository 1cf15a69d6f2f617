package httpapi

import (
	"context"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/fut-draft/internal/domain/draft"
	"github.com/riskibarqy/fut-draft/internal/platform/logging"
	"github.com/riskibarqy/fut-draft/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "fut-draft"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

var responseBuffers bytebufferpool.Pool

// writeJSON encodes into a pooled buffer first so an encoding failure can still become a 500.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	buf := responseBuffers.Get()
	defer responseBuffers.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		logging.Default().ErrorContext(ctx, "encode response failed", "error", err)
		buf.Reset()
		_, _ = buf.WriteString(`{"apiVersion":"2.0","error":{"code":500,"message":"internal server error","status":"INTERNAL"}}`)
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)
	if mapped.HTTPStatus >= http.StatusInternalServerError {
		logging.Default().ErrorContext(ctx, "request failed", "error", err, "status", mapped.HTTPStatus)
	}

	writeJSON(ctx, w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: err.Error(),
			Status:  mapped.Status,
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  mapped.Reason,
					Message: err.Error(),
				},
			},
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	const msg = "internal server error"

	writeJSON(ctx, w, http.StatusInternalServerError, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    http.StatusInternalServerError,
			Message: msg,
			Status:  "INTERNAL",
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  "internalError",
					Message: msg,
				},
			},
		},
	})
}

// mapError checks the specific draft errors before ErrInvalidTransition: occupied slots and
// candidates outside the pool are marked as invalid transitions too.
func mapError(err error) mappedError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Status: "INVALID_ARGUMENT"}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound", Status: "NOT_FOUND"}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{HTTPStatus: http.StatusServiceUnavailable, Reason: "dependencyUnavailable", Status: "UNAVAILABLE"}
	case errors.Is(err, draft.ErrUnknownSlot):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "unknownSlot", Status: "INVALID_ARGUMENT"}
	case errors.Is(err, draft.ErrDuplicateAssignment):
		return mappedError{HTTPStatus: http.StatusConflict, Reason: "duplicateAssignment", Status: "ALREADY_EXISTS"}
	case errors.Is(err, draft.ErrSlotOccupied):
		return mappedError{HTTPStatus: http.StatusConflict, Reason: "slotOccupied", Status: "FAILED_PRECONDITION"}
	case errors.Is(err, draft.ErrCandidateNotOffered):
		return mappedError{HTTPStatus: http.StatusConflict, Reason: "candidateNotOffered", Status: "FAILED_PRECONDITION"}
	case errors.Is(err, draft.ErrInvalidTransition):
		return mappedError{HTTPStatus: http.StatusConflict, Reason: "invalidTransition", Status: "FAILED_PRECONDITION"}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}
	}
}
