package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcalvora/leadflow/internal/entity"
	"github.com/mcalvora/leadflow/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the error taxonomy onto HTTP and wraps the message in the
// {"error": ...} envelope the frontend expects.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), errorResponse{Error: err.Error()})
}

func statusForError(err error) int {
	if errors.Is(err, entity.ErrLeadNotFound) || errors.Is(err, entity.ErrClientNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, entity.ErrLeadAlreadyConverted) {
		return http.StatusConflict
	}

	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case usecase.CodeValidation, usecase.CodeInvalidStatus:
			return http.StatusBadRequest
		case usecase.CodeLeadNotFound, usecase.CodeClientNotFound:
			return http.StatusNotFound
		case usecase.CodeAlreadyConverted:
			return http.StatusConflict
		default:
			return http.StatusUnprocessableEntity
		}
	}

	return http.StatusInternalServerError
}
