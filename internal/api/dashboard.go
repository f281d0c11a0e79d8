package api

import (
	"net/http"

	"hospitalinventory/m/domain"
)

func (h *Handler) totalAssets(w http.ResponseWriter, r *http.Request) {
	n, err := h.store.CountAssets(r.Context())
	if err != nil {
		h.serverError(w, r, "unable to count assets", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"totalAssets": n})
}

func (h *Handler) totalResources(w http.ResponseWriter, r *http.Request) {
	n, err := h.store.CountResources(r.Context())
	if err != nil {
		h.serverError(w, r, "unable to count resources", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"totalResources": n})
}

func (h *Handler) assetTimeline(w http.ResponseWriter, r *http.Request) {
	points, err := h.store.AssetTimeline(r.Context())
	if err != nil {
		h.serverError(w, r, "unable to fetch asset timeline", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"chartData": points})
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.LowStock(r.Context())
	if err != nil {
		h.serverError(w, r, "unable to fetch low stock items", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"lowStockItems": items})
}

type recentUpdatesResponse struct {
	Success       bool                  `json:"success"`
	RecentUpdates []domain.RecentUpdate `json:"recentUpdates"`
}

func (h *Handler) recentUpdates(w http.ResponseWriter, r *http.Request) {
	changes, err := h.store.RecentChanges(r.Context())
	if err != nil {
		h.serverError(w, r, "unable to fetch recent updates", err)
		return
	}
	updates := make([]domain.RecentUpdate, 0, len(changes))
	for _, c := range changes {
		updates = append(updates, c.RecentUpdate())
	}
	respondJSON(w, http.StatusOK, recentUpdatesResponse{Success: true, RecentUpdates: updates})
}
