package handlers

import (
	"log"
	"net/http"

	"darpan_backend/store"
)

type refreshResponse struct {
	Status    string       `json:"status"`
	Snapshot  store.Status `json:"snapshot"`
	Forecasts store.Status `json:"forecasts"`
}

// RefreshArtifacts drops the cached artifacts and reloads them from disk.
// Batch jobs call it after publishing so the API serves fresh data without
// waiting out the staleness window.
func (h *Handler) RefreshArtifacts(w http.ResponseWriter, r *http.Request) {
	snapshot, forecasts := h.store.Refresh()
	log.Printf("Artifacts refreshed: snapshot loaded=%t count=%d, forecasts loaded=%t count=%d",
		snapshot.Loaded, snapshot.Count, forecasts.Loaded, forecasts.Count)

	response := refreshResponse{Status: "success", Snapshot: snapshot, Forecasts: forecasts}
	code := http.StatusOK
	if !snapshot.Loaded || !forecasts.Loaded {
		response.Status = "error"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}
