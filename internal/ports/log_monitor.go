package ports

import (
	"context"
	"io"
)

// LogMonitor streams a board's serial log output.
type LogMonitor interface {
	Stream(ctx context.Context, port string, baud int, w io.Writer) error
	ListPorts() ([]string, error)
}
