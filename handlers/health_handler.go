package handlers

import (
	"net/http"

	"darpan_backend/store"
)

type healthResponse struct {
	Status    string       `json:"status"`
	Service   string       `json:"service"`
	Snapshot  store.Status `json:"snapshot"`
	Forecasts store.Status `json:"forecasts"`
}

// GetHealth is the liveness probe: the process is up and serving.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// GetDetailedHealth reports artifact readiness for operators and for the
// deployment's readiness probe. Degraded means the process is fine but at
// least one artifact cannot be served.
func (h *Handler) GetDetailedHealth(w http.ResponseWriter, r *http.Request) {
	snapshot, forecasts := h.store.Health()

	response := healthResponse{
		Status:    "ok",
		Service:   "darpan-backend",
		Snapshot:  snapshot,
		Forecasts: forecasts,
	}
	code := http.StatusOK
	if !snapshot.Loaded || !forecasts.Loaded {
		response.Status = "degraded"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}
