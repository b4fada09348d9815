package handlers

import (
	"errors"
	"net/http"

	"github.com/ADITYAKUMARSINGH16/ai-judicial/assistant"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/models"
)

// statusForError maps the error taxonomy to HTTP status codes so every
// handler surfaces the same distinction the stores make
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, models.ErrDuplicatePrincipal):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, assistant.ErrUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
