package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/assetid/internal/platform/logging"
	"github.com/riskibarqy/assetid/internal/usecase"
)

type Handler struct {
	assetService  *usecase.AssetService
	idService     *usecase.IDService
	importWorkers int
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	assetService *usecase.AssetService,
	idService *usecase.IDService,
	importWorkers int,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		assetService:  assetService,
		idService:     idService,
		importWorkers: importWorkers,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
