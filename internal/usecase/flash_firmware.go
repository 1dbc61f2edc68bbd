package usecase

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aalvaropc/teensyflash/internal/domain"
	"github.com/aalvaropc/teensyflash/internal/ports"
)

// FlashFirmware converts a binary to Intel HEX and writes it to the board.
type FlashFirmware struct {
	scratch   ports.ScratchSpace
	converter ports.FirmwareConverter
	loader    ports.DeviceLoader
	target    domain.Target
	log       *slog.Logger
	now       func() time.Time
}

type FlashOption func(*FlashFirmware)

func WithFlashLogger(l *slog.Logger) FlashOption {
	return func(uc *FlashFirmware) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithFlashNow is useful for tests.
func WithFlashNow(now func() time.Time) FlashOption {
	return func(uc *FlashFirmware) { uc.now = now }
}

func NewFlashFirmware(ss ports.ScratchSpace, fc ports.FirmwareConverter, dl ports.DeviceLoader, opts ...FlashOption) *FlashFirmware {
	uc := &FlashFirmware{
		scratch:   ss,
		converter: fc,
		loader:    dl,
		target:    domain.TargetTeensyMicroMod,
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs preflight, conversion and flashing in order, stopping at the
// first failure. The returned result is always populated, including on error.
func (uc *FlashFirmware) Execute(ctx context.Context, binaryPath string) (res domain.FlashResult, err error) {
	res = domain.FlashResult{
		BinaryPath: binaryPath,
		Target:     uc.target,
		Stage:      domain.StageNotStarted,
		StartedAt:  uc.now(),
	}

	defer func() {
		res.EndedAt = uc.now()
		if err != nil {
			res.FailedAt = res.Stage
			res.Stage = domain.StageFailed
			uc.log.Info("flash.failed", "binary", binaryPath, "failed_at", res.FailedAt, "err", err)
			return
		}
		uc.log.Info("flash.done", "binary", binaryPath, "target", uc.target, "duration_ms", res.Duration().Milliseconds())
	}()

	if binaryPath == "" {
		return res, &domain.OpError{Op: "usecase.flash", Kind: domain.KindUsage, Err: domain.ErrUsage}
	}

	if err := uc.converter.Locate(); err != nil {
		return res, err
	}
	if err := uc.loader.Locate(); err != nil {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	err = withScratch(uc.scratch, uc.log, func(dir string) error {
		hexPath := filepath.Join(dir, domain.HexFileName)

		res.Stage = domain.StageConverting
		uc.log.Debug("flash.convert.start", "binary", binaryPath, "hex", hexPath)
		if err := uc.converter.Convert(ctx, binaryPath, hexPath); err != nil {
			return err
		}

		res.Stage = domain.StageFlashing
		uc.log.Debug("flash.load.start", "hex", hexPath, "target", uc.target)
		return uc.loader.Load(ctx, uc.target, hexPath)
	})
	if err != nil {
		return res, err
	}

	res.Stage = domain.StageDone
	res.Message = domain.CompletionMessage
	return res, nil
}
