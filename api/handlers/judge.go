package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ADITYAKUMARSINGH16/ai-judicial/api"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/config"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/court"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/models"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/stores"
)

// Judge exported for testing purposes
type Judge struct {
	Directory *stores.Directory
	Engine    court.Engine
	Hub       *Hub
	Timeout   time.Duration
}

type evaluateRequest struct {
	Favored string `json:"favored"`
}

// EvaluateHandler adjudicates a case. The acting principal comes from basic
// auth against the directory; the engine enforces the Judge role gate before
// anything is mutated.
func (j Judge) EvaluateHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	name, password, ok := r.BasicAuth()
	if !ok {
		config.ErrorStatus("failed to authenticate", http.StatusUnauthorized, w, models.ErrInvalidCredentials)
		return
	}
	principal, err := j.Directory.Authenticate(name, password)
	if err != nil {
		config.ErrorStatus("failed to authenticate", statusForError(err), w, err)
		return
	}

	req := evaluateRequest{Favored: court.FavorPlaintiff}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
			return
		}
	}

	ctx, cancel := api.WithGenerateTimeout(r.Context(), j.Timeout)
	defer cancel()

	ruling, err := j.Engine.Evaluate(ctx, caseID, principal, req.Favored)
	if err != nil {
		config.ErrorStatus("failed to evaluate case", statusForError(err), w, err)
		return
	}

	if j.Hub != nil {
		j.Hub.Broadcast(caseID, Event{Type: "ruling", CaseID: caseID, Payload: ruling})
	}

	b, err := json.Marshal(ruling)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
