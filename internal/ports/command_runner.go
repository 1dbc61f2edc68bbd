package ports

import (
	"context"

	"github.com/aalvaropc/teensyflash/internal/domain"
)

// CommandRunner executes external tools and resolves their executables.
type CommandRunner interface {
	Run(ctx context.Context, cmd domain.Command) error
	LookPath(name string) (string, error)
}
