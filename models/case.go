package models

// CaseStatus is the lifecycle status of a case
type CaseStatus string

// Case lifecycle statuses. A case only ever moves forward into StatusRuled;
// nothing transitions out of it.
const (
	StatusSubmitted   CaseStatus = "Submitted"
	StatusUnderReview CaseStatus = "Under Review"
	StatusRuled       CaseStatus = "Ruled"
)

// Case holds the central record representing a dispute under management
type Case struct {
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Tags        []string        `json:"tags" yaml:"tags"`
	Evidence    []EvidenceRef   `json:"evidence" yaml:"evidence"`
	Status      CaseStatus      `json:"status" yaml:"status"`
	Timeline    []TimelineEntry `json:"timeline" yaml:"timeline"`
	Messages    []Message       `json:"messages" yaml:"-"`
	Ruling      *Ruling         `json:"ruling" yaml:"-"`
}

// EvidenceRef points at a single exhibit attached to a case
type EvidenceRef struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// TimelineEntry records one audit event in a case lifecycle. Entries are
// appended by the stores as a side effect of every mutation, never authored
// directly by a caller.
type TimelineEntry struct {
	TS     int64  `json:"ts" yaml:"ts"`
	Actor  string `json:"actor" yaml:"actor"`
	Action string `json:"action" yaml:"action"`
}

// Message is a human-to-human message attached to a case
type Message struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
	TS   int64  `json:"ts"`
}

// Ruling is the adjudication artifact issued by a Judge principal
type Ruling struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	TS        int64  `json:"ts"`
	JudgeName string `json:"judge"`
}
