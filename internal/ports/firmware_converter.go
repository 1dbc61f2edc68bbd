package ports

import "context"

// FirmwareConverter turns a compiled binary into an Intel HEX file.
type FirmwareConverter interface {
	Locate() error
	Convert(ctx context.Context, binaryPath, hexPath string) error
}
