// Package assistant is the boundary to the response generator. The core only
// depends on the Responder contract; the scripted implementation below stands
// in for a real generation backend and can be swapped without touching the
// stores or the adjudication engine.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable is returned when the response generator failed or timed out
var ErrUnavailable = errors.New("response generator unavailable")

// Responder produces a response for an instruction plus named context fields.
// Implementations may be slow or fail; callers bound the call with the request
// context and must not mutate any store until it has succeeded.
type Responder interface {
	Generate(ctx context.Context, instruction string, fields map[string]string) (string, error)
}

// Scripted is the deterministic pattern-matched stand-in for an AI backend.
// Identical inputs always produce identical output.
type Scripted struct{}

// Generate matches the instruction against a fixed set of patterns. Recognized
// context fields: caseTitle, shortFacts, favored.
func (Scripted) Generate(ctx context.Context, instruction string, fields map[string]string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if instruction == "" {
		return "...", nil
	}

	p := strings.ToLower(instruction)
	switch {
	case strings.Contains(p, "summarize"):
		return fmt.Sprintf("Summary — %s: %s",
			fieldOr(fields, "caseTitle", "No case"),
			fieldOr(fields, "shortFacts", "No facts provided.")), nil
	case strings.Contains(p, "advice"), strings.Contains(p, "what should"):
		return "Legal Assistant: Based on the facts, consider documenting evidence and reviewing statutory provisions.", nil
	case strings.Contains(p, "evaluate"), strings.Contains(p, "decide"):
		return fmt.Sprintf("Ruling: In favor of %s\nReasoning: The record indicates breach of duty supported by exhibits.",
			fieldOr(fields, "favored", "plaintiff")), nil
	}
	return fmt.Sprintf("AI: (Simulated) I can help with: %q", instruction), nil
}

func fieldOr(fields map[string]string, key, fallback string) string {
	if v := fields[key]; v != "" {
		return v
	}
	return fallback
}
