package api

import (
	"context"
	"time"
)

// GenerateTimeout is the default bound on a response generator call
const GenerateTimeout = 10 * time.Second

// WithGenerateTimeout creates a context bounding a response generator call.
// Zero or negative d falls back to the default.
func WithGenerateTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if d <= 0 {
		d = GenerateTimeout
	}
	return context.WithTimeout(parent, d)
}
