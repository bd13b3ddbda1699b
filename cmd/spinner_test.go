package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stefan-k/cobald/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegotiatorQueryDescribe(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Querying negotiator local for all resources...", negotiatorQuery{}.describe())
	assert.Equal(t,
		"Querying negotiator cm.example.org for GPU, gpu.mem...",
		negotiatorQuery{pool: "cm.example.org", resources: []domain.ResourceID{"GPU", "gpu.mem"}}.describe(),
	)
}

func TestNegotiatorWaitModelTracksWaitUntilAnswered(t *testing.T) {
	t.Parallel()

	started := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	now := started
	m := newNegotiatorWaitModel(negotiatorQuery{pool: "cm"}, nil, func() time.Time { return now })

	now = started.Add(1250 * time.Millisecond)
	updated, _ := m.Update(spinner.TickMsg{})
	m = updated.(negotiatorWaitModel)
	assert.Contains(t, m.View(), "waiting on cm (1.2s)")

	failure := errors.New("collector unreachable")
	updated, cmd := m.Update(negotiatorAnsweredMsg{err: failure})
	m = updated.(negotiatorWaitModel)
	require.NotNil(t, cmd)
	assert.True(t, m.answered)
	assert.ErrorIs(t, m.err, failure)
	assert.Empty(t, m.View())
}

func TestWaitForNegotiatorAnnouncesBeforeRunning(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	err := waitForNegotiator(context.Background(), &output, negotiatorQuery{}, time.Now, func(context.Context) error {
		return nil
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output.String(), "Querying negotiator local for all resources...\n"))
}

func TestWaitForNegotiatorReturnsRunError(t *testing.T) {
	t.Parallel()

	failure := errors.New("query failed")
	err := waitForNegotiator(context.Background(), &bytes.Buffer{}, negotiatorQuery{}, time.Now, func(context.Context) error {
		return failure
	})
	require.ErrorIs(t, err, failure)
}
