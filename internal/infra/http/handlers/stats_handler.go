package handlers

import (
	"net/http"

	"github.com/mcalvora/leadflow/internal/usecase"
)

type StatsHandler struct {
	StatsUC *usecase.ComputeStatsUseCase
}

func NewStatsHandler(statsUC *usecase.ComputeStatsUseCase) *StatsHandler {
	return &StatsHandler{StatsUC: statsUC}
}

// Get (GET /api/stats)
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsUC.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
