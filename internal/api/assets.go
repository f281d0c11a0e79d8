package api

import (
	"errors"
	"net/http"

	"hospitalinventory/m/domain"
	"hospitalinventory/m/internal/store"
)

// assetRequest uses pointers so that a zero stockCount or deduction counts
// as present.
type assetRequest struct {
	Name       *string      `json:"name"`
	StockCount *int64       `json:"stockCount"`
	Deduction  *int64       `json:"deduction"`
	Date       *domain.Date `json:"date"`
}

func (req assetRequest) complete() bool {
	return req.Name != nil && req.StockCount != nil && req.Deduction != nil && req.Date != nil
}

func (req assetRequest) asset() domain.Asset {
	return domain.Asset{
		Name:       *req.Name,
		StockCount: *req.StockCount,
		Deduction:  *req.Deduction,
		Date:       *req.Date,
	}
}

type assetCreatedResponse struct {
	ID         int64       `json:"id"`
	ResourceID int64       `json:"resource_id"`
	Name       string      `json:"name"`
	StockCount int64       `json:"stockCount"`
	Deduction  int64       `json:"deduction"`
	Date       domain.Date `json:"date"`
}

func (h *Handler) listAssets(w http.ResponseWriter, r *http.Request) {
	resourceID, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid resource id")
		return
	}
	assets, err := h.store.ListAssets(r.Context(), resourceID)
	if err != nil {
		h.serverError(w, r, "unable to list assets", err)
		return
	}
	respondJSON(w, http.StatusOK, assets)
}

func (h *Handler) getAsset(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid asset id")
		return
	}
	asset, err := h.store.GetAsset(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Asset not found")
		return
	}
	if err != nil {
		h.serverError(w, r, "unable to fetch asset", err)
		return
	}
	respondJSON(w, http.StatusOK, asset)
}

func (h *Handler) createAsset(w http.ResponseWriter, r *http.Request) {
	resourceID, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid resource id")
		return
	}
	var req assetRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !req.complete() {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	asset := req.asset()
	asset.ResourceID = resourceID
	created, err := h.store.CreateAsset(r.Context(), asset)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Resource not found")
		return
	}
	if err != nil {
		h.serverError(w, r, "unable to create asset", err)
		return
	}
	respondJSON(w, http.StatusCreated, assetCreatedResponse{
		ID:         created.ID,
		ResourceID: created.ResourceID,
		Name:       created.Name,
		StockCount: created.StockCount,
		Deduction:  created.Deduction,
		Date:       created.Date,
	})
}

func (h *Handler) updateAsset(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid asset id")
		return
	}
	var req assetRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !req.complete() {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	asset := req.asset()
	asset.ID = id
	err = h.store.UpdateAsset(r.Context(), asset)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Asset not found")
		return
	}
	if err != nil {
		h.serverError(w, r, "unable to update asset", err)
		return
	}
	respondMessage(w, http.StatusOK, "Asset updated successfully")
}

func (h *Handler) deleteAsset(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid asset id")
		return
	}
	archived, err := h.store.DeleteAsset(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Asset not found")
		return
	}
	if err != nil {
		h.serverError(w, r, "unable to delete asset", err)
		return
	}
	h.log.Info(r.Context(), "asset archived", "asset_id", archived.ID, "resource_id", archived.ResourceID)
	respondMessage(w, http.StatusOK, "Asset moved to deleted_assets table")
}

func (h *Handler) listDeletedAssets(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.store.ListDeletedAssets(r.Context())
	if err != nil {
		h.serverError(w, r, "unable to list deleted assets", err)
		return
	}
	respondJSON(w, http.StatusOK, deleted)
}
