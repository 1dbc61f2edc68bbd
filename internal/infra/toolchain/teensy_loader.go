package toolchain

import (
	"context"
	"strings"

	"github.com/aalvaropc/teensyflash/internal/domain"
	"github.com/aalvaropc/teensyflash/internal/ports"
)

const DefaultTeensyLoader = "teensy_loader_cli"

// loaderFlags: wait for the device, soft reboot after programming, verbose
// output (-v is verbose, not verify).
const loaderFlags = "-wsv"

// TeensyLoader programs boards with teensy_loader_cli.
type TeensyLoader struct {
	runner ports.CommandRunner
	bin    string
}

type LoaderOption func(*TeensyLoader)

// WithLoaderBinary overrides the executable name or path.
func WithLoaderBinary(bin string) LoaderOption {
	return func(l *TeensyLoader) {
		if strings.TrimSpace(bin) != "" {
			l.bin = bin
		}
	}
}

func NewTeensyLoader(runner ports.CommandRunner, opts ...LoaderOption) *TeensyLoader {
	l := &TeensyLoader{
		runner: runner,
		bin:    DefaultTeensyLoader,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.DeviceLoader = (*TeensyLoader)(nil)

func (l *TeensyLoader) Command(target domain.Target, hexPath string) domain.Command {
	return domain.Command{
		Name: l.bin,
		Args: []string{"--mcu=" + string(target), loaderFlags, hexPath},
	}
}

func (l *TeensyLoader) Locate() error {
	if _, err := l.runner.LookPath(l.bin); err != nil {
		return &domain.OpError{
			Op:   "toolchain.loader.locate",
			Kind: domain.KindToolNotFound,
			Path: l.bin,
			Err:  err,
		}
	}
	return nil
}

func (l *TeensyLoader) Load(ctx context.Context, target domain.Target, hexPath string) error {
	if err := l.runner.Run(ctx, l.Command(target, hexPath)); err != nil {
		return wrapToolError("toolchain.loader.load", domain.KindFlash, hexPath, err)
	}
	return nil
}
