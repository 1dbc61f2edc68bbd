package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aalvaropc/teensyflash/internal/domain"
)

const (
	exitUsage       = 1
	exitFailure     = 1
	exitNotFound    = 127
	exitInterrupted = 130
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case domain.IsKind(err, domain.KindUsage):
		return exitUsage
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case domain.IsKind(err, domain.KindToolNotFound):
		return exitNotFound
	}
	if code := domain.ExitCodeOf(err); code > 0 {
		return code
	}
	return exitFailure
}

// userMessage turns an error into the one line printed on stderr. The failing
// tool already printed its own diagnostics.
func userMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return "interrupted"
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return err.Error()
	}

	switch oe.Kind {
	case domain.KindToolNotFound:
		return fmt.Sprintf("%s: executable not found (install it or pass --objcopy/--loader)", oe.Path)

	case domain.KindConversion:
		if code := domain.ExitCodeOf(err); code > 0 {
			return fmt.Sprintf("converting %s to Intel HEX failed (exit status %d)", oe.Path, code)
		}
		return fmt.Sprintf("converting %s to Intel HEX failed: %v", oe.Path, oe.Err)

	case domain.KindFlash:
		if code := domain.ExitCodeOf(err); code > 0 {
			return fmt.Sprintf("flashing %s failed (exit status %d)", domain.TargetTeensyMicroMod, code)
		}
		return fmt.Sprintf("flashing %s failed: %v", domain.TargetTeensyMicroMod, oe.Err)

	case domain.KindInvalidHex:
		return fmt.Sprintf("invalid Intel HEX: %v", oe.Err)

	case domain.KindSerial:
		if oe.Path != "" {
			return fmt.Sprintf("serial port %s: %v", oe.Path, oe.Err)
		}
		return fmt.Sprintf("serial: %v", oe.Err)

	default:
		return err.Error()
	}
}
