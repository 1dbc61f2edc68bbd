package domain

import (
	"strings"
	"time"
)

// Target identifies the board the loader programs.
type Target string

// TargetTeensyMicroMod is the only supported board.
const TargetTeensyMicroMod Target = "TEENSY_MICROMOD"

const (
	// HexFileName is the name of the converted artifact inside the scratch directory.
	HexFileName = "firmware.hex"

	// HexFormat is the objcopy output format identifier for Intel HEX.
	HexFormat = "ihex"

	UsageMessage      = "Please provide the binary as first argument!"
	CompletionMessage = "Teensy successfully flashed. Read its log output from the UART pin 1."
)

// Command is a single external process invocation.
type Command struct {
	Name string
	Args []string
}

// String renders the command the way a shell user would type it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Stage is the position of a flash run in its linear lifecycle.
type Stage string

const (
	StageNotStarted Stage = "not_started"
	StageConverting Stage = "converting"
	StageFlashing   Stage = "flashing"
	StageDone       Stage = "done"
	StageFailed     Stage = "failed"
)

// FlashResult describes one flash run.
type FlashResult struct {
	BinaryPath string    `json:"binary_path" yaml:"binary_path"`
	Target     Target    `json:"target" yaml:"target"`
	Stage      Stage     `json:"stage" yaml:"stage"`
	FailedAt   Stage     `json:"failed_at,omitempty" yaml:"failed_at,omitempty"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	EndedAt    time.Time `json:"ended_at" yaml:"ended_at"`
	Message    string    `json:"message,omitempty" yaml:"message,omitempty"`
}

// Duration is zero until the run has both timestamps.
func (r FlashResult) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// ScratchDir is a temporary directory owned by a single run.
// Release removes it with all its contents; calling it again is a no-op.
type ScratchDir struct {
	Path    string
	Release func() error
}
