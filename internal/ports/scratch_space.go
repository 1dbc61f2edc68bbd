package ports

import "github.com/aalvaropc/teensyflash/internal/domain"

// ScratchSpace hands out temporary directories owned by a single run.
type ScratchSpace interface {
	Acquire() (domain.ScratchDir, error)
}
