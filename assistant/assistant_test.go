package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedSummarize(t *testing.T) {
	r := Scripted{}

	out, err := r.Generate(context.Background(), "Summarize the evidence", map[string]string{
		"caseTitle":  "Breach of Contract",
		"shortFacts": "Plaintiff claims missed deadlines.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Summary — Breach of Contract: Plaintiff claims missed deadlines.", out)

	out, err = r.Generate(context.Background(), "summarize", nil)
	require.NoError(t, err)
	assert.Equal(t, "Summary — No case: No facts provided.", out)
}

func TestScriptedAdvice(t *testing.T) {
	r := Scripted{}

	out, err := r.Generate(context.Background(), "What should I do next?", nil)
	require.NoError(t, err)
	assert.Contains(t, out, "Legal Assistant:")
}

func TestScriptedEvaluate(t *testing.T) {
	r := Scripted{}

	out, err := r.Generate(context.Background(), "Evaluate and decide", map[string]string{"favored": "defendant"})
	require.NoError(t, err)
	assert.Contains(t, out, "Ruling: In favor of defendant")
	assert.Contains(t, out, "Reasoning:")

	// favored defaults to plaintiff
	out, err = r.Generate(context.Background(), "Evaluate and decide", nil)
	require.NoError(t, err)
	assert.Contains(t, out, "In favor of plaintiff")
}

func TestScriptedFallbackAndEmpty(t *testing.T) {
	r := Scripted{}

	out, err := r.Generate(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, "...", out)

	out, err = r.Generate(context.Background(), "draft a motion", nil)
	require.NoError(t, err)
	assert.Contains(t, out, `"draft a motion"`)
}

func TestScriptedDeterministic(t *testing.T) {
	r := Scripted{}
	fields := map[string]string{"caseTitle": "T", "shortFacts": "F"}

	a, err := r.Generate(context.Background(), "summarize this", fields)
	require.NoError(t, err)
	b, err := r.Generate(context.Background(), "summarize this", fields)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestScriptedCanceledContext(t *testing.T) {
	r := Scripted{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Generate(ctx, "summarize", nil)
	assert.ErrorIs(t, err, ErrUnavailable)
}
