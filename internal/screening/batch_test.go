package screening

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenBatch_PreservesRequestOrder(t *testing.T) {
	reqs := make([]Request, 20)
	for i := range reqs {
		reqs[i] = Request{
			Text:       accountantResume,
			JobTitle:   "Senior Accountant",
			SourceName: fmt.Sprintf("resume-%02d.txt", i),
		}
	}

	outcomes, err := ScreenBatch(context.Background(), reqs)

	require.NoError(t, err)
	require.Len(t, outcomes, len(reqs))
	for i, outcome := range outcomes {
		assert.Equal(t, fmt.Sprintf("resume-%02d.txt", i), outcome.SourceName)
		assert.Equal(t, 100, outcome.Result.Score)
	}
}

func TestScreenBatch_MixedJobTitles(t *testing.T) {
	reqs := []Request{
		{Text: accountantResume, JobTitle: "Senior Accountant", SourceName: "a.txt"},
		{Text: muralistResume, JobTitle: "Senior Accountant", SourceName: "b.txt"},
	}

	outcomes, err := ScreenBatch(context.Background(), reqs)

	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].Result.IsQualified)
	assert.False(t, outcomes[1].Result.IsQualified)
}

func TestScreenBatch_Empty(t *testing.T) {
	outcomes, err := ScreenBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestScreenBatch_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reqs := make([]Request, 50)
	for i := range reqs {
		reqs[i] = Request{Text: accountantResume, JobTitle: "Senior Accountant"}
	}

	_, err := ScreenBatch(ctx, reqs)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScreenBatch_UniqueScreeningIDs(t *testing.T) {
	reqs := make([]Request, 10)
	for i := range reqs {
		reqs[i] = Request{Text: accountantResume, JobTitle: "Senior Accountant"}
	}

	outcomes, err := ScreenBatch(context.Background(), reqs)
	require.NoError(t, err)

	seen := make(map[string]bool, len(outcomes))
	for _, outcome := range outcomes {
		assert.False(t, seen[outcome.ScreeningID])
		seen[outcome.ScreeningID] = true
	}
}
