// Package handlers implements the HTTP endpoints of the audit API.
package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"darpan_backend/store"
)

// Handler bundles the endpoints over one artifact store.
type Handler struct {
	store *store.Store
}

func New(s *store.Store) *Handler {
	return &Handler{store: s}
}

// errorResponse is the envelope every failed request returns. The dashboard
// keys its error banners off the message text, so messages are part of the
// contract.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Status: "error", Message: message})
}
