package status

import (
	"testing"
	"time"

	"github.com/stefan-k/cobald/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReportWithLimitedAndUnlimitedResources(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render(application.StatusReport{
		Pool: "cm.example.org",
		Resources: []application.ResourceStatus{
			{Resource: "gpu", Limit: 4, Usage: 2, Utilisation: 0.5},
			{Resource: "scratch", Unlimited: true, Usage: 5},
		},
		Total: application.TotalStatus{Supply: 4, Demand: 4, Utilisation: 0.5, Allocation: 0.5},
	}, RenderOptions{Now: now, MaxAge: 30 * time.Second})

	require.NoError(t, err)
	assert.Contains(t, output, "Negotiator Concurrency Limits")
	assert.Contains(t, output, "pool: cm.example.org")
	assert.Contains(t, output, "resources: 2")
	assert.Contains(t, output, "as of 11:00:00")
	assert.Contains(t, output, "max age 30s")
	assert.Contains(t, output, "============")
	assert.Contains(t, output, "------------")
	assert.Contains(t, output, "2/4")
	assert.Contains(t, output, "(50% used)")
	assert.Contains(t, output, "unlimited (5 running)")
	assert.Contains(t, output, "supply 4, demand 4, 50% utilised, 50% allocated")
	assert.NotContains(t, output, "[over limit]")
}

func TestRenderFlagsResourcesOverLimit(t *testing.T) {
	output, err := Render(application.StatusReport{
		Resources: []application.ResourceStatus{
			{Resource: "gpu", Limit: 2, Usage: 3, Utilisation: 1},
		},
		Total: application.TotalStatus{Supply: 2, Demand: 2, Utilisation: 1, Allocation: 1},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "pool: local")
	assert.Contains(t, output, "3/2")
	assert.Contains(t, output, "(100% used)")
	assert.Contains(t, output, "[over limit]")
	assert.NotContains(t, output, "as of")
}

func TestRenderFractionalValues(t *testing.T) {
	output, err := Render(application.StatusReport{
		Resources: []application.ResourceStatus{
			{Resource: "gpu.mem", Limit: 2.5, Usage: 0.5, Utilisation: 0.2},
		},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "gpu.mem")
	assert.Contains(t, output, "0.5/2.5")
	assert.Contains(t, output, "(20% used)")
}

func TestRenderEmptyReport(t *testing.T) {
	output, err := Render(application.StatusReport{}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "resources: 0")
	assert.Contains(t, output, "No concurrency limits reported.")
}

func TestRenderProgressBarBounds(t *testing.T) {
	s := newStyles()

	assert.Equal(t, "", renderProgressBar(50, 0, s))

	empty := renderProgressBar(-10, 4, s)
	assert.Contains(t, empty, "----")
	assert.NotContains(t, empty, "=")

	full := renderProgressBar(250, 4, s)
	assert.Contains(t, full, "====")
	assert.NotContains(t, full, "-")
}
