package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mcalvora/leadflow/internal/entity"
	"github.com/mcalvora/leadflow/internal/infra/http/middleware"
	"github.com/mcalvora/leadflow/internal/usecase"
)

type LeadHandler struct {
	CreateUC       *usecase.CreateLeadUseCase
	UpdateStatusUC *usecase.UpdateLeadStatusUseCase
	DeleteUC       *usecase.DeleteLeadUseCase
	ConvertUC      *usecase.ConvertLeadUseCase
	Leads          usecase.LeadRepositoryInterface

	rateLimiter *RateLimiter
}

func NewLeadHandler(
	createUC *usecase.CreateLeadUseCase,
	updateStatusUC *usecase.UpdateLeadStatusUseCase,
	deleteUC *usecase.DeleteLeadUseCase,
	convertUC *usecase.ConvertLeadUseCase,
	leads usecase.LeadRepositoryInterface,
) *LeadHandler {
	return &LeadHandler{
		CreateUC:       createUC,
		UpdateStatusUC: updateStatusUC,
		DeleteUC:       deleteUC,
		ConvertUC:      convertUC,
		Leads:          leads,
		rateLimiter:    NewRateLimiter(10, time.Minute), // 10 req/min per IP, intake is public
	}
}

// Create (POST /api/leads)
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "Too many requests. Please try again later."})
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadCreated()
	writeJSON(w, http.StatusCreated, lead)
}

// List (GET /api/leads)
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

// Get (GET /api/leads/{id})
func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.Leads.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus (PATCH /api/leads/{id}/status)
func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	lead, err := h.UpdateStatusUC.Execute(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordStatusTransition(req.Status)
	writeJSON(w, http.StatusOK, lead)
}

// Delete (DELETE /api/leads/{id})
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.DeleteUC.Execute(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Convert (POST /api/leads/{id}/convert)
func (h *LeadHandler) Convert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var overrides entity.ClientOverrides
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&overrides); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
			return
		}
	}

	client, err := h.ConvertUC.Execute(r.Context(), id, overrides)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadConversion()
	writeJSON(w, http.StatusCreated, client)
}
