package usecase

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aalvaropc/teensyflash/internal/domain"
	"github.com/aalvaropc/teensyflash/internal/ports"
)

// InspectFirmware converts a binary the same way FlashFirmware does and
// summarizes the resulting image without touching the board.
type InspectFirmware struct {
	scratch   ports.ScratchSpace
	converter ports.FirmwareConverter
	inspector ports.HexInspector
	log       *slog.Logger
}

func NewInspectFirmware(ss ports.ScratchSpace, fc ports.FirmwareConverter, hi ports.HexInspector, log *slog.Logger) *InspectFirmware {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &InspectFirmware{
		scratch:   ss,
		converter: fc,
		inspector: hi,
		log:       log,
	}
}

func (uc *InspectFirmware) Execute(ctx context.Context, binaryPath string) (domain.InspectResult, error) {
	out := domain.InspectResult{BinaryPath: binaryPath}

	if binaryPath == "" {
		return out, &domain.OpError{Op: "usecase.inspect", Kind: domain.KindUsage, Err: domain.ErrUsage}
	}
	if err := uc.converter.Locate(); err != nil {
		return out, err
	}

	err := withScratch(uc.scratch, uc.log, func(dir string) error {
		hexPath := filepath.Join(dir, domain.HexFileName)
		if err := uc.converter.Convert(ctx, binaryPath, hexPath); err != nil {
			return err
		}

		img, err := uc.inspector.Inspect(hexPath)
		if err != nil {
			return err
		}
		// The artifact is gone once the scratch dir is released.
		img.Path = domain.HexFileName
		out.Image = img
		return nil
	})
	if err != nil {
		return out, err
	}

	uc.log.Info("inspect.done", "binary", binaryPath, "segments", len(out.Image.Segments), "bytes", out.Image.TotalBytes)
	return out, nil
}
