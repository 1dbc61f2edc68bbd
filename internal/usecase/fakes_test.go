package usecase

import (
	"context"
	"errors"
	"os"

	"github.com/aalvaropc/teensyflash/internal/domain"
	"github.com/aalvaropc/teensyflash/internal/infra/scratch"
	"github.com/aalvaropc/teensyflash/internal/ports"
)

// fakeConverter writes a minimal HEX file unless err is set.
type fakeConverter struct {
	locateErr error
	err       error

	calls     int
	gotBinary string
	gotHex    string
}

func (f *fakeConverter) Locate() error { return f.locateErr }

func (f *fakeConverter) Convert(_ context.Context, binaryPath, hexPath string) error {
	f.calls++
	f.gotBinary = binaryPath
	f.gotHex = hexPath
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(hexPath, []byte(":00000001FF\n"), 0o600)
}

type fakeLoader struct {
	locateErr error
	err       error

	calls     int
	gotTarget domain.Target
	gotHex    string
	sawHex    bool
}

func (f *fakeLoader) Locate() error { return f.locateErr }

func (f *fakeLoader) Load(_ context.Context, target domain.Target, hexPath string) error {
	f.calls++
	f.gotTarget = target
	f.gotHex = hexPath
	_, statErr := os.Stat(hexPath)
	f.sawHex = statErr == nil
	return f.err
}

// countingScratch delegates to a real scratch space and remembers what it handed out.
type countingScratch struct {
	inner      *scratch.Space
	acquired   int
	last       string
	releaseErr error
}

func newCountingScratch(parent string) *countingScratch {
	return &countingScratch{inner: scratch.New(scratch.WithParent(parent))}
}

func (s *countingScratch) Acquire() (domain.ScratchDir, error) {
	dir, err := s.inner.Acquire()
	if err != nil {
		return dir, err
	}
	s.acquired++
	s.last = dir.Path

	if s.releaseErr != nil {
		release := dir.Release
		dir.Release = func() error {
			_ = release()
			return s.releaseErr
		}
	}
	return dir, nil
}

type fakeInspector struct {
	img    domain.HexImage
	err    error
	gotHex string
}

func (f *fakeInspector) Inspect(path string) (domain.HexImage, error) {
	f.gotHex = path
	if f.err != nil {
		return domain.HexImage{}, f.err
	}
	img := f.img
	img.Path = path
	return img, nil
}

func toolFailure(kind domain.ErrorKind, code int) error {
	return &domain.OpError{
		Op:   "toolchain.test",
		Kind: kind,
		Err:  &domain.OpError{Op: "toolexec.run", Kind: domain.KindExecution, ExitCode: code, Err: domain.ErrToolFailed},
	}
}

func dirExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

var (
	_ ports.FirmwareConverter = (*fakeConverter)(nil)
	_ ports.DeviceLoader      = (*fakeLoader)(nil)
	_ ports.ScratchSpace      = (*countingScratch)(nil)
	_ ports.HexInspector      = (*fakeInspector)(nil)
)
