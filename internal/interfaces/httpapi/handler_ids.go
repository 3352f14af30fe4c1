package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/assetid/internal/platform/id"
	"github.com/riskibarqy/assetid/internal/usecase"
)

func (h *Handler) MintIDs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.MintIDs")
	defer span.End()

	var req mintIDsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	ids, err := h.idService.Mint(ctx, req.Count)
	if err != nil {
		h.logger.WarnContext(ctx, "mint ids failed", "count", req.Count, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, mintIDsDTO{IDs: ids})
}

func (h *Handler) NormalizeIDs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.NormalizeIDs")
	defer span.End()

	var req normalizeIDsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	tokens := make([]id.Token, 0, len(req.IDs))
	for i, raw := range req.IDs {
		tok, err := id.JSONToken(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: ids[%d]: %w", usecase.ErrInvalidInput, i, err))
			return
		}
		tokens = append(tokens, tok)
	}

	items, err := h.idService.Normalize(ctx, tokens)
	if err != nil {
		h.logger.WarnContext(ctx, "normalize ids failed", "count", len(tokens), "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]normalizedIDDTO, 0, len(items))
	for _, item := range items {
		out = append(out, normalizedIDDTO{
			Input:   item.Input,
			ID:      item.ID,
			Display: item.ID.String(),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, normalizeIDsDTO{Items: out})
}
