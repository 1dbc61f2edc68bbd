package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrUsage        = errors.New("please provide the binary as first argument")
	ErrToolNotFound = errors.New("tool not found")
	ErrToolFailed   = errors.New("tool exited with non-zero status")
	ErrInvalidHex   = errors.New("invalid intel hex")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindUsage        ErrorKind = "usage"
	KindToolNotFound ErrorKind = "tool_not_found"
	KindConversion   ErrorKind = "conversion"
	KindFlash        ErrorKind = "flash"
	KindInvalidHex   ErrorKind = "invalid_hex"
	KindSerial       ErrorKind = "serial"
	KindExecution    ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op       string
	Kind     ErrorKind
	Path     string // Optional: relevant file or device path
	ExitCode int    // Optional: exit status of a failed external tool
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.ExitCode != 0 {
		base += fmt.Sprintf(" (exit=%d)", e.ExitCode)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
// The outermost OpError decides the kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// ExitCodeOf returns the first non-zero tool exit status found in the chain,
// or 0 if none was recorded.
func ExitCodeOf(err error) int {
	for err != nil {
		var oe *OpError
		if !errors.As(err, &oe) {
			return 0
		}
		if oe.ExitCode != 0 {
			return oe.ExitCode
		}
		err = oe.Err
	}
	return 0
}
