package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	osexec "os/exec"
	"strings"

	"github.com/stefan-k/cobald/internal/ports"
)

var (
	ErrUnavailable = errors.New("negotiator command unavailable")
	errEmptyArgv   = errors.New("empty command line")
)

type runFunc func(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)

type Runner struct {
	run runFunc
}

var _ ports.CommandRunner = (*Runner)(nil)

func NewRunner() *Runner {
	return &Runner{run: runCommand}
}

func (r *Runner) Query(ctx context.Context, argv []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(argv) == 0 {
		return nil, errEmptyArgv
	}

	stdout, stderr, err := r.run(ctx, argv[0], argv[1:]...)
	if err != nil {
		return nil, formatError(ctx, argv, err, stderr)
	}

	return splitLines(stdout), nil
}

func (r *Runner) Exec(ctx context.Context, argv []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(argv) == 0 {
		return errEmptyArgv
	}

	_, stderr, err := r.run(ctx, argv[0], argv[1:]...)
	if err != nil {
		return formatError(ctx, argv, err, stderr)
	}

	return nil
}

func runCommand(ctx context.Context, name string, args ...string) (string, string, error) {
	path, err := osexec.LookPath(name)
	if err != nil {
		if errors.Is(err, osexec.ErrNotFound) {
			return "", "", fmt.Errorf("%w: %s", ErrUnavailable, name)
		}
		return "", "", fmt.Errorf("locate %s command: %w", name, err)
	}

	cmd := osexec.CommandContext(ctx, path, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func splitLines(stdout string) []string {
	stdout = strings.TrimRight(stdout, "\r\n")
	if stdout == "" {
		return nil
	}

	lines := strings.Split(stdout, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

func formatError(ctx context.Context, argv []string, err error, stderr string) error {
	// A killed child reports "signal: killed"; surface the deadline instead.
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		err = fmt.Errorf("%w: %w", ctxErr, err)
	}

	command := strings.Join(argv, " ")
	if stderr == "" {
		return fmt.Errorf("%s: %w", command, err)
	}

	return fmt.Errorf("%s: %w: %s", command, err, stderr)
}
