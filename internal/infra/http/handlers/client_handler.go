package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mcalvora/leadflow/internal/usecase"
)

type ClientHandler struct {
	Clients usecase.ClientRepositoryInterface
}

func NewClientHandler(clients usecase.ClientRepositoryInterface) *ClientHandler {
	return &ClientHandler{Clients: clients}
}

// List (GET /api/clients)
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Clients.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, clients)
}

// Delete (DELETE /api/clients/{id})
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Clients.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
