package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fut-draft/internal/platform/logging"
	"github.com/riskibarqy/fut-draft/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	draftService   *usecase.DraftService
	catalogService *usecase.CatalogService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	draftService *usecase.DraftService,
	catalogService *usecase.CatalogService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		draftService:   draftService,
		catalogService: catalogService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeRequest reads one JSON object into payload and validates its tags.
func (h *Handler) decodeRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, payload any) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	defer body.Close()

	if err := sonic.ConfigDefault.NewDecoder(body).Decode(payload); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload", usecase.ErrInvalidInput)
	}

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return value, nil
}

func pathInt(r *http.Request, key string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(r.PathValue(key)))
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, key)
	}
	return value, nil
}
