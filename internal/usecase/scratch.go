package usecase

import (
	"log/slog"

	"github.com/aalvaropc/teensyflash/internal/ports"
)

// withScratch runs fn inside a freshly acquired scratch directory and
// releases it on every return path. A release failure only surfaces when fn
// itself succeeded.
func withScratch(space ports.ScratchSpace, log *slog.Logger, fn func(dir string) error) (err error) {
	dir, err := space.Acquire()
	if err != nil {
		return err
	}
	log.Debug("scratch.acquired", "path", dir.Path)

	defer func() {
		if rerr := dir.Release(); rerr != nil {
			log.Warn("scratch.release_failed", "path", dir.Path, "err", rerr)
			if err == nil {
				err = rerr
			}
			return
		}
		log.Debug("scratch.released", "path", dir.Path)
	}()

	return fn(dir.Path)
}
