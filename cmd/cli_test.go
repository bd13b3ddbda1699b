package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeConfigVal = `#!/bin/sh
case " $* " in
  *" -rset "*)
    printf '%s\n' "$*" >> "$(dirname "$0")/rset.log"
    if [ -n "$FAKE_RSET_FAIL" ]; then
      echo "ERROR: reconfig refused" >&2
      exit 1
    fi
    exit 0
    ;;
esac
printf '%s\n' "$*" >> "$(dirname "$0")/query.log"
cat <<'OUT'
# Configuration from negotiator on cm.example.org
GPU_LIMIT = 4
gpu.mem_LIMIT = 2
CONCURRENCY_LIMIT_DEFAULT = 100
OUT
`

const fakeUserprio = `#!/bin/sh
printf '%s\n' "$*" >> "$(dirname "$0")/query.log"
cat <<'OUT'
Name = "group_a.alice@example.org"
ConcurrencyLimit_GPU = 2
ConcurrencyLimit_gpu_mem = 1
ConcurrencyLimit_scratch = 5
OUT
`

func TestLimitsListPrintsSortedLimits(t *testing.T) {
	home := writeNegotiatorFixture(t)

	stdout, _, err := executeCLI(t, home, "limits", "list")
	require.NoError(t, err)
	assert.Equal(t, "GPU = 4\ngpu.mem = 2\n", stdout)
}

func TestLimitsListJSONOutput(t *testing.T) {
	home := writeNegotiatorFixture(t)

	stdout, _, err := executeCLI(t, home, "limits", "list", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"resource\": \"gpu.mem\"")
	assert.Contains(t, stdout, "\"value\": 2")
}

func TestLimitsGetFallsBackToParentGroup(t *testing.T) {
	home := writeNegotiatorFixture(t)

	stdout, _, err := executeCLI(t, home, "limits", "get", "GPU.a100")
	require.NoError(t, err)
	assert.Equal(t, "4\n", stdout)
}

func TestLimitsGetUnknownResourceFails(t *testing.T) {
	home := writeNegotiatorFixture(t)

	_, _, err := executeCLI(t, home, "limits", "get", "tape")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resource not found")
}

func TestLimitsPassPoolToNegotiator(t *testing.T) {
	home := writeNegotiatorFixture(t)

	_, _, err := executeCLI(t, home, "--pool", "cm.example.org", "limits", "list")
	require.NoError(t, err)

	queries, err := os.ReadFile(filepath.Join(home, "bin", "query.log"))
	require.NoError(t, err)
	assert.Equal(t, "-negotiator -dump LIMIT -pool cm.example.org\n", string(queries))
}

func TestLimitsSetSendsTruncatedValue(t *testing.T) {
	home := writeNegotiatorFixture(t)

	stdout, _, err := executeCLI(t, home, "limits", "set", "GPU", "8.9")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Requested limit GPU = 8")

	rset, err := os.ReadFile(filepath.Join(home, "bin", "rset.log"))
	require.NoError(t, err)
	assert.Equal(t, "-negotiator -rset GPU_LIMIT = 8\n", string(rset))
}

func TestLimitsSetFailureIsLoggedNotReturned(t *testing.T) {
	home := writeNegotiatorFixture(t)
	t.Setenv("FAKE_RSET_FAIL", "1")

	_, stderr, err := executeCLI(t, home, "limits", "set", "GPU", "8")
	require.NoError(t, err)
	assert.Contains(t, stderr, "failed to constrain resource")
	assert.Contains(t, stderr, "reconfig refused")
}

func TestLimitsSetRejectsNegativeValue(t *testing.T) {
	home := writeNegotiatorFixture(t)

	_, _, err := executeCLI(t, home, "limits", "set", "GPU", "--", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid limit")

	_, statErr := os.Stat(filepath.Join(home, "bin", "rset.log"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLimitsExportThenApplyRoundTrip(t *testing.T) {
	home := writeNegotiatorFixture(t)
	planPath := filepath.Join(home, "plan.toml")

	stdout, _, err := executeCLI(t, home, "limits", "export", planPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Exported 2 limits")

	raw, err := os.ReadFile(planPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "gpu.mem")

	stdout, _, err = executeCLI(t, home, "limits", "apply", planPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Applied 2 limits")

	rset, err := os.ReadFile(filepath.Join(home, "bin", "rset.log"))
	require.NoError(t, err)
	assert.Equal(t, "-negotiator -rset GPU_LIMIT = 4\n-negotiator -rset gpu.mem_LIMIT = 2\n", string(rset))
}

func TestUsageGetNormalizesDottedResource(t *testing.T) {
	home := writeNegotiatorFixture(t)

	stdout, _, err := executeCLI(t, home, "usage", "get", "gpu.mem")
	require.NoError(t, err)
	assert.Equal(t, "1\n", stdout)
}

func TestUsageListPrintsNormalizedKeys(t *testing.T) {
	home := writeNegotiatorFixture(t)

	stdout, _, err := executeCLI(t, home, "usage", "list")
	require.NoError(t, err)
	assert.Equal(t, "GPU = 2\ngpu_mem = 1\nscratch = 5\n", stdout)
}

func TestStatusRendersLimitsAndUsage(t *testing.T) {
	home := writeNegotiatorFixture(t)

	stdout, _, err := executeCLI(t, home, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "resources: 3")
	assert.Contains(t, stdout, "2/4")
	assert.Contains(t, stdout, "(50% used)")
	assert.Contains(t, stdout, "unlimited (5 running)")
}

func TestStatusAnnouncesNegotiatorQuery(t *testing.T) {
	home := writeNegotiatorFixture(t)

	_, stderr, err := executeCLI(t, home, "status")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Querying negotiator local for all resources...")
}

func TestStatusAnnouncesPoolAndSelectedResources(t *testing.T) {
	home := writeNegotiatorFixture(t)

	_, stderr, err := executeCLI(t, home, "--pool", "cm.example.org", "status", "--resource", "GPU", "--resource", "gpu.mem")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Querying negotiator cm.example.org for GPU, gpu.mem...")
}

func TestStatusJSONOutputForSelectedResource(t *testing.T) {
	home := writeNegotiatorFixture(t)

	stdout, stderr, err := executeCLI(t, home, "status", "--resource", "gpu.mem", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"resource\": \"gpu.mem\"")
	assert.Contains(t, stdout, "\"utilisation\": 0.5")
	assert.Contains(t, stdout, "\"total\": {")
	assert.NotContains(t, stderr, "Querying negotiator")
}

func TestStatusReturnsQueryError(t *testing.T) {
	home := writeNegotiatorFixture(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(home, "bin", "condor_userprio"),
		[]byte("#!/bin/sh\necho 'collector unreachable' >&2\nexit 2\n"),
		0o755,
	))

	_, _, err := executeCLI(t, home, "status", "--json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collector unreachable")
}

func TestInvalidConfigFails(t *testing.T) {
	home := writeNegotiatorFixture(t)

	_, _, err := executeCLI(t, home, "--max-age", "-1s", "limits", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negotiator.max_age must be positive")
}

func TestVersionCommand(t *testing.T) {
	home := writeNegotiatorFixture(t)

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev", strings.TrimSpace(stdout))
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// writeNegotiatorFixture installs fake condor binaries under home/bin and a
// config pointing at them.
func writeNegotiatorFixture(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	binDir := filepath.Join(home, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "condor_config_val"), []byte(fakeConfigVal), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "condor_userprio"), []byte(fakeUserprio), 0o755))

	configDir := filepath.Join(home, ".condorlimits")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	config := fmt.Sprintf(`[negotiator]
max_age = "1m"
userprio_binary = %q
config_val_binary = %q

[log]
level = "info"
`, filepath.Join(binDir, "condor_userprio"), filepath.Join(binDir, "condor_config_val"))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o644))

	return home
}
