package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/ADITYAKUMARSINGH16/ai-judicial/api"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/assistant"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/config"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/models"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/stores"
)

// shortFactsLimit caps how much of a case description is handed to the
// responder as context
const shortFactsLimit = 120

// Assistant exported for testing purposes
type Assistant struct {
	Ledger    *stores.Ledger
	DB        *stores.CaseStore
	Responder assistant.Responder
	Timeout   time.Duration
}

type askRequest struct {
	From   string `json:"from"`
	Prompt string `json:"prompt"`
}

type historyResponse struct {
	Exchanges []models.Exchange `json:"exchanges"`
}

// AskHandler runs one assistant exchange for a case: the responder is called
// first and the ledger only mutated once it has succeeded, so an abandoned or
// failed call leaves no partial record behind.
func (a Assistant) AskHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		err := fmt.Errorf("%w: prompt is required", models.ErrInvalidInput)
		config.ErrorStatus("failed to ask assistant", statusForError(err), w, err)
		return
	}

	// the exchange is case-aware when the id is known to the store, but the
	// ledger namespace is independent, so an unknown id still records
	fields := map[string]string{}
	if c, err := a.DB.Get(caseID); err == nil {
		fields["caseTitle"] = c.Title
		fields["shortFacts"] = shortFacts(c.Description)
	}

	ctx, cancel := api.WithGenerateTimeout(r.Context(), a.Timeout)
	defer cancel()

	resp, err := a.Responder.Generate(ctx, req.Prompt, fields)
	if err != nil {
		config.ErrorStatus("failed to generate response", statusForError(err), w, err)
		return
	}
	if err := ctx.Err(); err != nil {
		config.ErrorStatus("assistant call abandoned", http.StatusGatewayTimeout, w, err)
		return
	}

	ex, err := a.Ledger.AppendExchange(caseID, req.From, req.Prompt, resp)
	if err != nil {
		config.ErrorStatus("failed to record exchange", statusForError(err), w, err)
		return
	}

	b, err := json.Marshal(ex)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// HistoryHandler returns the assistant conversation for a case in insertion
// order; an unknown case id simply has an empty history
func (a Assistant) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	exchanges := a.Ledger.History(caseID)
	if exchanges == nil {
		exchanges = []models.Exchange{}
	}

	b, err := json.Marshal(historyResponse{Exchanges: exchanges})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func shortFacts(description string) string {
	runes := []rune(description)
	if len(runes) <= shortFactsLimit {
		return description
	}
	return string(runes[:shortFactsLimit])
}
