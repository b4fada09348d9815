// Package court holds the adjudication engine: the only path by which a case
// reaches the terminal Ruled status.
package court

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ADITYAKUMARSINGH16/ai-judicial/assistant"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/models"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/stores"
)

// Favored party labels accepted by Evaluate
const (
	FavorPlaintiff = "plaintiff"
	FavorDefendant = "defendant"
	FavorSplit     = "split"
)

// Engine issues rulings. The role gate lives here, in one place, rather than
// at each call site.
type Engine struct {
	Cases     *stores.CaseStore
	Responder assistant.Responder
}

// Evaluate produces a ruling for a case on behalf of a Judge principal. The
// case is untouched on every failure path: authorization, lookup, generator
// failure and caller cancellation are all checked before SetRuling runs.
// A repeat call on an already-ruled case succeeds and overwrites the ruling.
func (e Engine) Evaluate(ctx context.Context, caseID string, requester models.Principal, favored string) (models.Ruling, error) {
	if requester.Role != models.RoleJudge {
		return models.Ruling{}, fmt.Errorf("%w: only a Judge may evaluate a case", models.ErrUnauthorized)
	}
	switch favored {
	case FavorPlaintiff, FavorDefendant, FavorSplit:
	default:
		return models.Ruling{}, fmt.Errorf("%w: unknown favored party %q", models.ErrInvalidInput, favored)
	}

	c, err := e.Cases.Get(caseID)
	if err != nil {
		return models.Ruling{}, err
	}

	text, err := e.Responder.Generate(ctx, "Evaluate and decide", map[string]string{
		"favored":   favored,
		"caseTitle": c.Title,
	})
	if err != nil {
		return models.Ruling{}, err
	}
	if err := ctx.Err(); err != nil {
		// the caller walked away; do not mutate anything
		return models.Ruling{}, fmt.Errorf("%w: %v", assistant.ErrUnavailable, err)
	}

	ts := time.Now().UnixMilli()
	ruling := models.Ruling{
		ID:        "R-" + strconv.FormatInt(ts, 10),
		Text:      text,
		TS:        ts,
		JudgeName: requester.Name,
	}
	if _, err := e.Cases.SetRuling(caseID, ruling); err != nil {
		return models.Ruling{}, err
	}

	zap.S().Infow("case evaluated", "case", caseID, "judge", requester.Name, "favored", favored)
	return ruling, nil
}
