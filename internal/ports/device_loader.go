package ports

import (
	"context"

	"github.com/aalvaropc/teensyflash/internal/domain"
)

// DeviceLoader writes an Intel HEX file to a board.
type DeviceLoader interface {
	Locate() error
	Load(ctx context.Context, target domain.Target, hexPath string) error
}
