package handlers

import (
	"log"
	"net/http"
	"sort"
)

type metadataResponse struct {
	Status   string              `json:"status"`
	Metadata map[string][]string `json:"metadata"`
}

// GetMetadata serves the state-to-districts map that fills the dashboard
// dropdowns. Names come out normalized, deduplicated and sorted so the UI
// renders stable lists without any cleanup of its own.
func (h *Handler) GetMetadata(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.Snapshot()
	if err != nil {
		log.Printf("Snapshot unavailable: %v", err)
		writeError(w, http.StatusServiceUnavailable, "Data Not Ready")
		return
	}

	grouped := make(map[string]map[string]bool)
	for _, record := range records {
		if grouped[record.State] == nil {
			grouped[record.State] = make(map[string]bool)
		}
		grouped[record.State][record.District] = true
	}

	metadata := make(map[string][]string, len(grouped))
	for state, districts := range grouped {
		names := make([]string, 0, len(districts))
		for district := range districts {
			names = append(names, district)
		}
		sort.Strings(names)
		metadata[state] = names
	}

	writeJSON(w, http.StatusOK, metadataResponse{Status: "success", Metadata: metadata})
}
