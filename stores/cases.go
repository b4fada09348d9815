package stores

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ADITYAKUMARSINGH16/ai-judicial/models"
)

const caseIDPrefix = "CASE-"

// CaseStore owns the authoritative collection of case records. Cases are
// created once and thereafter only mutated in place; every mutation appends
// exactly one timeline entry under the same lock so the two are never observed
// out of sync.
type CaseStore struct {
	mu      sync.RWMutex
	cases   []*models.Case // newest first
	byID    map[string]*models.Case
	counter int
	lastTS  int64
}

// NewCaseStore initializes an empty case store
func NewCaseStore() *CaseStore {
	return &CaseStore{byID: map[string]*models.Case{}}
}

// nextTS hands out unique, strictly increasing millisecond timestamps even
// when the wall clock collides at sub-millisecond call rates. Callers must
// hold the lock.
func (s *CaseStore) nextTS() int64 {
	ts := time.Now().UnixMilli()
	if ts <= s.lastTS {
		ts = s.lastTS + 1
	}
	s.lastTS = ts
	return ts
}

// Create allocates the next identifier and stores a new case with status
// Submitted and a single "Submitted case" timeline entry attributed to author.
func (s *CaseStore) Create(title, description string, tags []string, author string) (models.Case, error) {
	if strings.TrimSpace(title) == "" {
		return models.Case{}, fmt.Errorf("%w: title is required", models.ErrInvalidInput)
	}
	if author == "" {
		author = "Anon"
	}

	var clean []string
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	c := &models.Case{
		ID:          fmt.Sprintf("%s%03d", caseIDPrefix, s.counter),
		Title:       strings.TrimSpace(title),
		Description: description,
		Tags:        clean,
		Evidence:    []models.EvidenceRef{},
		Status:      models.StatusSubmitted,
		Timeline: []models.TimelineEntry{
			{TS: s.nextTS(), Actor: author, Action: "Submitted case"},
		},
		Messages: []models.Message{},
	}
	s.cases = append([]*models.Case{c}, s.cases...)
	s.byID[c.ID] = c

	zap.S().Infow("created case", "id", c.ID, "title", c.Title, "author", author)
	return copyCase(c), nil
}

// Get returns a snapshot of the case with the given id
func (s *CaseStore) Get(id string) (models.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	if !ok {
		return models.Case{}, fmt.Errorf("%w: case %s", models.ErrNotFound, id)
	}
	return copyCase(c), nil
}

// List returns snapshots of all cases, most recently created first
func (s *CaseStore) List() []models.Case {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Case, 0, len(s.cases))
	for _, c := range s.cases {
		out = append(out, copyCase(c))
	}
	return out
}

// DefaultSelection is the explicit stand-in for the UI convenience of opening
// the most recently created case when none is selected. Returns false when the
// store is empty.
func (s *CaseStore) DefaultSelection() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.cases) == 0 {
		return "", false
	}
	return s.cases[0].ID, true
}

// AppendMessage appends a message and its paired timeline entry in one step
func (s *CaseStore) AppendMessage(id, from, to, text string) (models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return models.Message{}, fmt.Errorf("%w: message text is required", models.ErrInvalidInput)
	}
	if from == "" {
		from = "Anon"
	}
	if to == "" {
		to = "All"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return models.Message{}, fmt.Errorf("%w: case %s", models.ErrNotFound, id)
	}

	ts := s.nextTS()
	m := models.Message{
		ID:   strconv.FormatInt(ts, 10),
		From: from,
		To:   to,
		Text: text,
		TS:   ts,
	}
	c.Messages = append(c.Messages, m)
	c.Timeline = append(c.Timeline, models.TimelineEntry{TS: ts, Actor: from, Action: "Message to " + to})
	return m, nil
}

// SetRuling records the ruling, forces status to Ruled and appends the
// "Issued ruling" timeline entry. A repeat call overwrites the prior ruling
// and appends another entry; status stays Ruled.
func (s *CaseStore) SetRuling(id string, ruling models.Ruling) (models.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return models.Case{}, fmt.Errorf("%w: case %s", models.ErrNotFound, id)
	}

	r := ruling
	c.Ruling = &r
	c.Status = models.StatusRuled
	c.Timeline = append(c.Timeline, models.TimelineEntry{
		TS:     s.nextTS(),
		Actor:  "Judge:" + ruling.JudgeName,
		Action: "Issued ruling",
	})

	zap.S().Infow("issued ruling", "case", c.ID, "judge", ruling.JudgeName)
	return copyCase(c), nil
}

// Timeline returns the case timeline in reverse-chronological order, most
// recent entry first. Derived from the case record; there is no separate
// storage.
func (s *CaseStore) Timeline(id string) ([]models.TimelineEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: case %s", models.ErrNotFound, id)
	}
	out := make([]models.TimelineEntry, len(c.Timeline))
	for i, e := range c.Timeline {
		out[len(c.Timeline)-1-i] = e
	}
	return out, nil
}

// Seed preloads cases at process start. Seeded cases keep their own ids and
// timelines but must honor the store invariants: unique ids and a counter that
// never reissues an already-seen number.
func (s *CaseStore) Seed(seeds []models.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range seeds {
		seed := seeds[i]
		if strings.TrimSpace(seed.ID) == "" || strings.TrimSpace(seed.Title) == "" {
			return fmt.Errorf("%w: seed case needs id and title", models.ErrInvalidInput)
		}
		if _, exists := s.byID[seed.ID]; exists {
			return fmt.Errorf("%w: duplicate seed case id %s", models.ErrInvalidInput, seed.ID)
		}

		c := copyCase(&seed)
		if c.Status == "" {
			c.Status = models.StatusSubmitted
		}
		if c.Evidence == nil {
			c.Evidence = []models.EvidenceRef{}
		}
		if c.Messages == nil {
			c.Messages = []models.Message{}
		}
		if c.Timeline == nil {
			c.Timeline = []models.TimelineEntry{}
		}

		// keep the counter ahead of every numeric suffix ever seen
		if n, err := strconv.Atoi(strings.TrimPrefix(c.ID, caseIDPrefix)); err == nil && n > s.counter {
			s.counter = n
		}

		cp := c
		s.cases = append([]*models.Case{&cp}, s.cases...)
		s.byID[cp.ID] = &cp
	}

	zap.S().Infow("seeded cases", "count", len(seeds))
	return nil
}

func copyCase(c *models.Case) models.Case {
	out := *c
	out.Tags = append([]string(nil), c.Tags...)
	out.Evidence = append([]models.EvidenceRef(nil), c.Evidence...)
	out.Timeline = append([]models.TimelineEntry(nil), c.Timeline...)
	out.Messages = append([]models.Message(nil), c.Messages...)
	if c.Ruling != nil {
		r := *c.Ruling
		out.Ruling = &r
	}
	return out
}
