package toolexec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/aalvaropc/teensyflash/internal/domain"
	"github.com/aalvaropc/teensyflash/internal/ports"
)

// Runner executes external tools with their output attached to the
// caller's streams, the way a shell would.
type Runner struct {
	stdout   io.Writer
	stderr   io.Writer
	log      *slog.Logger
	lookPath func(string) (string, error)
}

type Option func(*Runner)

func WithStdout(w io.Writer) Option {
	return func(r *Runner) { r.stdout = w }
}

func WithStderr(w io.Writer) Option {
	return func(r *Runner) { r.stderr = w }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithLookPath replaces exec.LookPath; useful for tests.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(r *Runner) {
		if fn != nil {
			r.lookPath = fn
		}
	}
}

func New(opts ...Option) *Runner {
	r := &Runner{
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.CommandRunner = (*Runner)(nil)

func (r *Runner) LookPath(name string) (string, error) {
	p, err := r.lookPath(name)
	if err != nil {
		return "", &domain.OpError{
			Op:   "toolexec.lookpath",
			Kind: domain.KindToolNotFound,
			Path: name,
			Err:  domain.ErrToolNotFound,
		}
	}
	return p, nil
}

// Run blocks until the tool exits. A non-zero exit status is reported as an
// OpError carrying the status in ExitCode.
func (r *Runner) Run(ctx context.Context, c domain.Command) error {
	if c.Name == "" {
		return &domain.OpError{
			Op:   "toolexec.run",
			Kind: domain.KindExecution,
			Err:  errors.New("command name is empty"),
		}
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	r.log.Debug("toolexec.start", "cmd", c.String())
	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err == nil {
		r.log.Debug("toolexec.done", "cmd", c.Name, "duration_ms", elapsed.Milliseconds())
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		r.log.Info("toolexec.canceled", "cmd", c.Name, "err", ctxErr)
		return &domain.OpError{
			Op:   "toolexec.run",
			Kind: domain.KindExecution,
			Path: c.Name,
			Err:  ctxErr,
		}
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return &domain.OpError{
			Op:   "toolexec.run",
			Kind: domain.KindToolNotFound,
			Path: c.Name,
			Err:  fmt.Errorf("%w: %v", domain.ErrToolNotFound, err),
		}
	}

	var ee *exec.ExitError
	if errors.As(err, &ee) {
		code := ee.ExitCode()
		if code <= 0 {
			code = 1
		}
		r.log.Info("toolexec.failed", "cmd", c.Name, "exit_code", code, "duration_ms", elapsed.Milliseconds())
		return &domain.OpError{
			Op:       "toolexec.run",
			Kind:     domain.KindExecution,
			Path:     c.Name,
			ExitCode: code,
			Err:      domain.ErrToolFailed,
		}
	}

	return &domain.OpError{
		Op:   "toolexec.run",
		Kind: domain.KindExecution,
		Path: c.Name,
		Err:  err,
	}
}
