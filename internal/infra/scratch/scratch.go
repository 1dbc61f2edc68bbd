package scratch

import (
	"os"
	"sync"

	"github.com/aalvaropc/teensyflash/internal/domain"
	"github.com/aalvaropc/teensyflash/internal/ports"
)

const defaultPattern = "teensyflash-"

// Space creates per-run temporary directories under a parent directory
// (os.TempDir when empty).
type Space struct {
	parent  string
	pattern string
}

type Option func(*Space)

func WithParent(dir string) Option {
	return func(s *Space) { s.parent = dir }
}

func WithPattern(p string) Option {
	return func(s *Space) {
		if p != "" {
			s.pattern = p
		}
	}
}

func New(opts ...Option) *Space {
	s := &Space{pattern: defaultPattern}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ScratchSpace = (*Space)(nil)

func (s *Space) Acquire() (domain.ScratchDir, error) {
	dir, err := os.MkdirTemp(s.parent, s.pattern)
	if err != nil {
		return domain.ScratchDir{}, &domain.OpError{
			Op:   "scratch.acquire",
			Kind: domain.KindExecution,
			Path: s.parent,
			Err:  err,
		}
	}

	var once sync.Once
	var rerr error
	release := func() error {
		once.Do(func() {
			if err := os.RemoveAll(dir); err != nil {
				rerr = &domain.OpError{
					Op:   "scratch.release",
					Kind: domain.KindExecution,
					Path: dir,
					Err:  err,
				}
			}
		})
		return rerr
	}

	return domain.ScratchDir{Path: dir, Release: release}, nil
}
