package court

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ADITYAKUMARSINGH16/ai-judicial/assistant"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/models"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/stores"
)

type failingResponder struct{}

func (failingResponder) Generate(ctx context.Context, instruction string, fields map[string]string) (string, error) {
	return "", fmt.Errorf("%w: backend down", assistant.ErrUnavailable)
}

func seededEngine(t *testing.T) (Engine, *stores.CaseStore) {
	t.Helper()
	cases := stores.NewCaseStore()
	err := cases.Seed([]models.Case{{
		ID:     "CASE-001",
		Title:  "Breach of Contract — Service Agreement",
		Status: models.StatusUnderReview,
		Timeline: []models.TimelineEntry{
			{TS: 1, Actor: "System", Action: "Imported"},
		},
	}})
	require.NoError(t, err)
	return Engine{Cases: cases, Responder: assistant.Scripted{}}, cases
}

func TestEvaluateByJudge(t *testing.T) {
	e, cases := seededEngine(t)
	judge := models.Principal{Name: "Judge Judy", Role: models.RoleJudge}

	ruling, err := e.Evaluate(context.Background(), "CASE-001", judge, FavorPlaintiff)
	require.NoError(t, err)

	assert.Equal(t, "Judge Judy", ruling.JudgeName)
	assert.Contains(t, ruling.Text, "In favor of plaintiff")

	c, err := cases.Get("CASE-001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRuled, c.Status)
	require.NotNil(t, c.Ruling)
	assert.Equal(t, ruling.ID, c.Ruling.ID)
	assert.Len(t, c.Timeline, 2, "timeline grows by exactly one entry")
}

func TestEvaluateByNonJudgeDoesNotMutate(t *testing.T) {
	e, cases := seededEngine(t)
	lawyer := models.Principal{Name: "Saul", Role: models.RoleLawyer}

	before, err := cases.Get("CASE-001")
	require.NoError(t, err)

	_, err = e.Evaluate(context.Background(), "CASE-001", lawyer, FavorPlaintiff)
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	after, err := cases.Get("CASE-001")
	require.NoError(t, err)
	assert.Equal(t, before.Status, after.Status)
	assert.Nil(t, after.Ruling)
	assert.Len(t, after.Timeline, len(before.Timeline))
}

func TestEvaluateUnknownCase(t *testing.T) {
	e, _ := seededEngine(t)
	judge := models.Principal{Name: "Judge Judy", Role: models.RoleJudge}

	_, err := e.Evaluate(context.Background(), "CASE-404", judge, FavorPlaintiff)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestEvaluateUnknownFavoredParty(t *testing.T) {
	e, cases := seededEngine(t)
	judge := models.Principal{Name: "Judge Judy", Role: models.RoleJudge}

	_, err := e.Evaluate(context.Background(), "CASE-001", judge, "the house")
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	c, err := cases.Get("CASE-001")
	require.NoError(t, err)
	assert.Nil(t, c.Ruling)
}

func TestEvaluateResponderFailureLeavesCaseUntouched(t *testing.T) {
	_, cases := seededEngine(t)
	e := Engine{Cases: cases, Responder: failingResponder{}}
	judge := models.Principal{Name: "Judge Judy", Role: models.RoleJudge}

	_, err := e.Evaluate(context.Background(), "CASE-001", judge, FavorDefendant)
	assert.ErrorIs(t, err, assistant.ErrUnavailable)

	c, err := cases.Get("CASE-001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnderReview, c.Status)
	assert.Nil(t, c.Ruling)
	assert.Len(t, c.Timeline, 1)
}

func TestEvaluateAbandonedCallDoesNotMutate(t *testing.T) {
	e, cases := seededEngine(t)
	judge := models.Principal{Name: "Judge Judy", Role: models.RoleJudge}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Evaluate(ctx, "CASE-001", judge, FavorSplit)
	require.Error(t, err)
	assert.True(t, errors.Is(err, assistant.ErrUnavailable))

	c, err := cases.Get("CASE-001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnderReview, c.Status)
	assert.Nil(t, c.Ruling)
}

func TestEvaluateRepeatOverwritesRuling(t *testing.T) {
	e, cases := seededEngine(t)
	judge := models.Principal{Name: "Judge Judy", Role: models.RoleJudge}

	first, err := e.Evaluate(context.Background(), "CASE-001", judge, FavorPlaintiff)
	require.NoError(t, err)
	second, err := e.Evaluate(context.Background(), "CASE-001", judge, FavorDefendant)
	require.NoError(t, err)

	c, err := cases.Get("CASE-001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRuled, c.Status)
	require.NotNil(t, c.Ruling)
	assert.Equal(t, second.ID, c.Ruling.ID, "later ruling replaces the earlier one")
	assert.NotEqual(t, first.Text, c.Ruling.Text)
	assert.Len(t, c.Timeline, 3, "each evaluation appends its own audit entry")
}
