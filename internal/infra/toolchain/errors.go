package toolchain

import (
	"context"
	"errors"

	"github.com/aalvaropc/teensyflash/internal/domain"
)

// wrapToolError classifies a runner failure. A missing executable is passed
// through untouched and cancellation keeps the execution kind; everything
// else becomes kind.
func wrapToolError(op string, kind domain.ErrorKind, path string, err error) error {
	switch {
	case domain.IsKind(err, domain.KindToolNotFound):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		kind = domain.KindExecution
	}
	return &domain.OpError{
		Op:   op,
		Kind: kind,
		Path: path,
		Err:  err,
	}
}
