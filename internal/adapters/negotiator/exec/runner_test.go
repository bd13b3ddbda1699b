package exec

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerQuerySplitsStdoutLines(t *testing.T) {
	t.Parallel()

	runner := &Runner{
		run: func(ctx context.Context, name string, args ...string) (string, string, error) {
			assert.Equal(t, "condor_userprio", name)
			assert.Equal(t, []string{"-negotiator", "-long"}, args)
			return "ConcurrencyLimit_gpu = 2\r\nConcurrencyLimit_cpu = 7\n\n", "", nil
		},
	}

	lines, err := runner.Query(context.Background(), []string{"condor_userprio", "-negotiator", "-long"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ConcurrencyLimit_gpu = 2", "ConcurrencyLimit_cpu = 7"}, lines)
}

func TestRunnerQueryEmptyOutput(t *testing.T) {
	t.Parallel()

	runner := &Runner{
		run: func(ctx context.Context, name string, args ...string) (string, string, error) {
			return "\n", "", nil
		},
	}

	lines, err := runner.Query(context.Background(), []string{"condor_userprio"})
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRunnerExecReturnsClearError(t *testing.T) {
	t.Parallel()

	runner := &Runner{
		run: func(ctx context.Context, name string, args ...string) (string, string, error) {
			return "", "Attempt to set configuration failed", errors.New("exit status 1")
		},
	}

	err := runner.Exec(context.Background(), []string{"condor_config_val", "-negotiator", "-rset", "GPU_LIMIT = 8"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "condor_config_val -negotiator -rset GPU_LIMIT = 8")
	assert.ErrorContains(t, err, "exit status 1")
	assert.ErrorContains(t, err, "Attempt to set configuration failed")
}

func TestRunnerRejectsEmptyArgv(t *testing.T) {
	t.Parallel()

	runner := &Runner{run: func(ctx context.Context, name string, args ...string) (string, string, error) {
		t.Fatal("run must not be called")
		return "", "", nil
	}}

	_, err := runner.Query(context.Background(), nil)
	require.ErrorIs(t, err, errEmptyArgv)
	require.ErrorIs(t, runner.Exec(context.Background(), []string{}), errEmptyArgv)
}

func TestRunnerHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	runner := &Runner{run: func(ctx context.Context, name string, args ...string) (string, string, error) {
		t.Fatal("run must not be called")
		return "", "", nil
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Query(ctx, []string{"condor_userprio"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunnerReportsMissingBinary(t *testing.T) {
	t.Parallel()

	_, err := NewRunner().Query(context.Background(), []string{"condorlimits-no-such-binary"})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestRunnerExecutesRealProcess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	t.Parallel()

	script := writeScript(t, "#!/bin/sh\necho \"GPU_LIMIT = $2\"\n")

	lines, err := NewRunner().Query(context.Background(), []string{script, "-negotiator", "4"})
	require.NoError(t, err)
	assert.Equal(t, []string{"GPU_LIMIT = 4"}, lines)
}

func TestRunnerTimeoutKillsProcess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	t.Parallel()

	script := writeScript(t, "#!/bin/sh\nexec sleep 5\n")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := NewRunner().Exec(ctx, []string{script})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func writeScript(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "negotiator.sh")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o755))
	return path
}
