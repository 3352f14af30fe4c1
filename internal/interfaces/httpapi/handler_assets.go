package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/assetid/internal/usecase"
)

func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CreateAsset")
	defer span.End()

	var req createAssetRequest
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

	item, err := h.assetService.Create(ctx, usecase.CreateAssetInput{
		Name: req.Name,
		Kind: req.Kind,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create asset failed", "name", req.Name, "kind", req.Kind, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "asset created", "asset_id", item.ID, "kind", item.Kind)
	writeSuccess(ctx, w, http.StatusCreated, assetToDTO(item))
}

func (h *Handler) ImportAssets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ImportAssets")
	defer span.End()

	var req importAssetsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %w", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	inputs := make([]usecase.ImportAssetInput, 0, len(req.Items))
	for _, record := range req.Items {
		input := usecase.ImportAssetInput{Name: record.Name, Kind: record.Kind}
		if record.ID != nil {
			input.ID = *record.ID
		}
		inputs = append(inputs, input)
	}

	res, err := h.assetService.Import(ctx, inputs, h.importWorkers)
	if err != nil {
		h.logger.WarnContext(ctx, "import assets failed", "count", len(inputs), "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "assets imported", "created", res.CreatedCount, "failed", res.FailedCount)
	writeSuccess(ctx, w, http.StatusOK, importResultToDTO(res))
}

func (h *Handler) LookupAssets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.LookupAssets")
	defer span.End()

	var req lookupAssetsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %w", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res, err := h.assetService.Lookup(ctx, req.IDs)
	if err != nil {
		h.logger.WarnContext(ctx, "lookup assets failed", "count", len(req.IDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lookupResultToDTO(res))
}

func (h *Handler) ListAssets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListAssets")
	defer span.End()

	limit := usecase.DefaultListLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: limit must be positive integer", usecase.ErrInvalidInput))
			return
		}
		limit = v
	}

	items, err := h.assetService.List(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list assets failed", "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]assetDTO, 0, len(items))
	for _, item := range items {
		out = append(out, assetToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetAsset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetAsset")
	defer span.End()

	token := r.PathValue("assetID")
	item, err := h.assetService.Get(ctx, token)
	if err != nil {
		h.logger.WarnContext(ctx, "get asset failed", "asset_id", token, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, assetToDTO(item))
}

func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeleteAsset")
	defer span.End()

	token := r.PathValue("assetID")
	if err := h.assetService.Delete(ctx, token); err != nil {
		h.logger.WarnContext(ctx, "delete asset failed", "asset_id", token, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
