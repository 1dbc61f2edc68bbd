package hexfile

import (
	"os"

	"github.com/marcinbor85/gohex"

	"github.com/aalvaropc/teensyflash/internal/domain"
	"github.com/aalvaropc/teensyflash/internal/ports"
)

// Reader parses Intel HEX files produced by the converter.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

var _ ports.HexInspector = (*Reader)(nil)

func (r *Reader) Inspect(path string) (domain.HexImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.HexImage{}, &domain.OpError{
			Op:   "hexfile.inspect",
			Kind: domain.KindInvalidHex,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(f); err != nil {
		return domain.HexImage{}, &domain.OpError{
			Op:   "hexfile.inspect",
			Kind: domain.KindInvalidHex,
			Path: path,
			Err:  err,
		}
	}

	segments := mem.GetDataSegments()
	if len(segments) == 0 {
		return domain.HexImage{}, &domain.OpError{
			Op:   "hexfile.inspect",
			Kind: domain.KindInvalidHex,
			Path: path,
			Err:  domain.ErrInvalidHex,
		}
	}

	img := domain.HexImage{
		Path:     path,
		Segments: make([]domain.HexSegment, 0, len(segments)),
	}
	for _, s := range segments {
		img.Segments = append(img.Segments, domain.HexSegment{Address: s.Address, Size: len(s.Data)})
		img.TotalBytes += len(s.Data)
	}

	if adr, ok := mem.GetStartAddress(); ok {
		img.StartAddress = &adr
	}

	return img, nil
}
