package ports

import "github.com/aalvaropc/teensyflash/internal/domain"

type HexInspector interface {
	Inspect(path string) (domain.HexImage, error)
}
