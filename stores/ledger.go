package stores

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ADITYAKUMARSINGH16/ai-judicial/models"
)

// Ledger holds the per-case assistant conversations. Its case-id namespace is
// independent of the case store: exchanges may be recorded against an id the
// store has never heard of, and that is tolerated.
type Ledger struct {
	mu        sync.RWMutex
	exchanges map[string][]models.Exchange
	lastTS    int64
}

// NewLedger initializes an empty conversation ledger
func NewLedger() *Ledger {
	return &Ledger{exchanges: map[string][]models.Exchange{}}
}

// AppendExchange records a prompt/response pair against a case id, creating
// the sequence on first use. The assistant turn always lands one logical
// millisecond after the user turn so insertion order survives timestamp
// collisions.
func (l *Ledger) AppendExchange(caseID, asker, prompt, response string) (models.Exchange, error) {
	if strings.TrimSpace(prompt) == "" {
		return models.Exchange{}, fmt.Errorf("%w: prompt is required", models.ErrInvalidInput)
	}
	if asker == "" {
		asker = "Guest"
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	ts := time.Now().UnixMilli()
	if ts <= l.lastTS {
		ts = l.lastTS + 1
	}
	l.lastTS = ts + 1

	ex := models.Exchange{
		User:      models.ExchangeTurn{ID: strconv.FormatInt(ts, 10) + "-u", From: asker, Text: prompt, TS: ts},
		Assistant: models.ExchangeTurn{ID: strconv.FormatInt(ts, 10) + "-b", From: "AI Assistant", Text: response, TS: ts + 1},
	}
	l.exchanges[caseID] = append(l.exchanges[caseID], ex)
	return ex, nil
}

// History returns the recorded exchanges for a case in insertion order, or an
// empty slice when none were recorded.
func (l *Ledger) History(caseID string) []models.Exchange {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]models.Exchange(nil), l.exchanges[caseID]...)
}
