package handlers

import (
	"net/http"
	"strconv"

	"github.com/mcalvora/leadflow/internal/usecase"
)

type ActivityHandler struct {
	Activity usecase.ActivityRepositoryInterface
}

func NewActivityHandler(activity usecase.ActivityRepositoryInterface) *ActivityHandler {
	return &ActivityHandler{Activity: activity}
}

// Recent (GET /api/activity?limit=n), most recent first.
func (h *ActivityHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	events, err := h.Activity.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, events)
}
