package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/ADITYAKUMARSINGH16/ai-judicial/config"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/models"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/stores"
)

// Principal exported for testing purposes
type Principal struct {
	Directory *stores.Directory
}

type signupRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// SignupHandler registers a new principal
func (p Principal) SignupHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		err := fmt.Errorf("%w: unknown role %q", models.ErrInvalidInput, req.Role)
		config.ErrorStatus("failed to register principal", statusForError(err), w, err)
		return
	}

	principal, err := p.Directory.Register(req.Name, role, req.Password)
	if err != nil {
		config.ErrorStatus("failed to register principal", statusForError(err), w, err)
		return
	}

	b, err := json.Marshal(principal)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// LoginHandler resolves a name/password pair to a principal. The credential is
// never echoed back and a mismatch does not say which part was wrong.
func (p Principal) LoginHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	principal, err := p.Directory.Authenticate(req.Name, req.Password)
	if err != nil {
		config.ErrorStatus("failed to authenticate", statusForError(err), w, err)
		return
	}

	zap.S().Debugw("principal logged in", "name", principal.Name, "role", principal.Role)

	b, err := json.Marshal(principal)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
