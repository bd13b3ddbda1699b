package ports

import "context"

// CommandRunner executes negotiator commands. argv[0] is the binary.
type CommandRunner interface {
	Query(ctx context.Context, argv []string) ([]string, error)
	Exec(ctx context.Context, argv []string) error
}
