package toolchain

import (
	"context"
	"strings"

	"github.com/aalvaropc/teensyflash/internal/domain"
	"github.com/aalvaropc/teensyflash/internal/ports"
)

const DefaultObjcopy = "llvm-objcopy"

// Objcopy converts firmware binaries to Intel HEX with llvm-objcopy.
type Objcopy struct {
	runner ports.CommandRunner
	bin    string
	format string
}

type ObjcopyOption func(*Objcopy)

// WithObjcopyBinary overrides the executable name or path.
func WithObjcopyBinary(bin string) ObjcopyOption {
	return func(o *Objcopy) {
		if strings.TrimSpace(bin) != "" {
			o.bin = bin
		}
	}
}

func NewObjcopy(runner ports.CommandRunner, opts ...ObjcopyOption) *Objcopy {
	o := &Objcopy{
		runner: runner,
		bin:    DefaultObjcopy,
		format: domain.HexFormat,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var _ ports.FirmwareConverter = (*Objcopy)(nil)

// Command returns the invocation used to convert binaryPath into hexPath.
func (o *Objcopy) Command(binaryPath, hexPath string) domain.Command {
	return domain.Command{
		Name: o.bin,
		Args: []string{"-O", o.format, binaryPath, hexPath},
	}
}

func (o *Objcopy) Locate() error {
	if _, err := o.runner.LookPath(o.bin); err != nil {
		return &domain.OpError{
			Op:   "toolchain.objcopy.locate",
			Kind: domain.KindToolNotFound,
			Path: o.bin,
			Err:  err,
		}
	}
	return nil
}

func (o *Objcopy) Convert(ctx context.Context, binaryPath, hexPath string) error {
	if err := o.runner.Run(ctx, o.Command(binaryPath, hexPath)); err != nil {
		return wrapToolError("toolchain.objcopy.convert", domain.KindConversion, binaryPath, err)
	}
	return nil
}
