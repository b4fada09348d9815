package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ADITYAKUMARSINGH16/ai-judicial/config"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/models"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/stores"
)

// Case exported for testing purposes
type Case struct {
	DB  *stores.CaseStore
	Hub *Hub
}

type createCaseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
}

type createMessageRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
}

type casesResponse struct {
	Cases         []models.Case `json:"cases"`
	DefaultCaseID string        `json:"defaultCaseId,omitempty"`
}

// CreateCaseHandler submits a new case
func (c Case) CreateCaseHandler(w http.ResponseWriter, r *http.Request) {
	var req createCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	created, err := c.DB.Create(req.Title, req.Description, req.Tags, req.Author)
	if err != nil {
		config.ErrorStatus("failed to create case", statusForError(err), w, err)
		return
	}

	b, err := json.Marshal(created)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// CasesHandler lists all cases, most recently created first, along with the
// id a caller should open when nothing is explicitly selected
func (c Case) CasesHandler(w http.ResponseWriter, r *http.Request) {
	resp := casesResponse{Cases: c.DB.List()}
	if id, ok := c.DB.DefaultSelection(); ok {
		resp.DefaultCaseID = id
	}

	b, err := json.Marshal(resp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CaseByIDHandler returns a case given a caseID
func (c Case) CaseByIDHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	zap.S().Debugf("case_id: %v", caseID)

	dbResp, err := c.DB.Get(caseID)
	if err != nil {
		config.ErrorStatus("failed to get case by ID", statusForError(err), w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CaseTimelineHandler returns the case audit trail, most recent entry first
func (c Case) CaseTimelineHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	entries, err := c.DB.Timeline(caseID)
	if err != nil {
		config.ErrorStatus("failed to get case timeline", statusForError(err), w, err)
		return
	}

	b, err := json.Marshal(entries)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateMessageHandler appends a message to a case
func (c Case) CreateMessageHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	var req createMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	msg, err := c.DB.AppendMessage(caseID, req.From, req.To, req.Text)
	if err != nil {
		config.ErrorStatus("failed to append message", statusForError(err), w, err)
		return
	}

	if c.Hub != nil {
		c.Hub.Broadcast(caseID, Event{Type: "message", CaseID: caseID, Payload: msg})
	}

	b, err := json.Marshal(msg)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}
