package handlers

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ADITYAKUMARSINGH16/ai-judicial/config"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/stores"
)

// Event is pushed to websocket subscribers of a case when a handler completes
// a mutation on it
type Event struct {
	Type    string      `json:"type"`
	CaseID  string      `json:"caseId"`
	Payload interface{} `json:"payload"`
}

// Hub fans case events out to websocket subscribers, one room per case id
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[*websocket.Conn]struct{}
}

// NewHub initializes an empty hub
func NewHub() *Hub {
	return &Hub{rooms: map[string]map[*websocket.Conn]struct{}{}}
}

// Join subscribes a connection to a case room
func (h *Hub) Join(caseID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[caseID] == nil {
		h.rooms[caseID] = map[*websocket.Conn]struct{}{}
	}
	h.rooms[caseID][conn] = struct{}{}
}

// Leave removes a connection from a case room
func (h *Hub) Leave(caseID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms[caseID], conn)
	if len(h.rooms[caseID]) == 0 {
		delete(h.rooms, caseID)
	}
}

// Broadcast sends an event to every subscriber of the case. Connections that
// fail to take the write are dropped from the room.
func (h *Hub) Broadcast(caseID string, ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.rooms[caseID] {
		if err := conn.WriteJSON(ev); err != nil {
			zap.S().Debugw("dropping slow stream subscriber", "case", caseID, "error", err)
			conn.Close()
			delete(h.rooms[caseID], conn)
		}
	}
}

// Stream exported for testing purposes
type Stream struct {
	DB  *stores.CaseStore
	Hub *Hub
}

var upgrader = websocket.Upgrader{
	// same-origin enforcement is left to the fronting layer in this prototype
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamHandler upgrades the connection and subscribes it to a case's events
// until the client goes away
func (s Stream) StreamHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	if _, err := s.DB.Get(caseID); err != nil {
		config.ErrorStatus("failed to get case by ID", statusForError(err), w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().With(err).Error("failed to upgrade stream connection")
		return
	}

	s.Hub.Join(caseID, conn)
	zap.S().Debugw("stream subscriber joined", "case", caseID)

	// the subscriber only listens; the read loop just detects the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.Hub.Leave(caseID, conn)
	conn.Close()
	zap.S().Debugw("stream subscriber left", "case", caseID)
}
