package domain

// HexSegment is a contiguous run of data in an Intel HEX image.
type HexSegment struct {
	Address uint32 `json:"address" yaml:"address"`
	Size    int    `json:"size" yaml:"size"`
}

// HexImage summarizes a converted firmware image.
type HexImage struct {
	Path         string       `json:"path" yaml:"path"`
	Segments     []HexSegment `json:"segments" yaml:"segments"`
	TotalBytes   int          `json:"total_bytes" yaml:"total_bytes"`
	StartAddress *uint32      `json:"start_address,omitempty" yaml:"start_address,omitempty"`
}

// InspectResult is the output of converting a binary without flashing it.
type InspectResult struct {
	BinaryPath string   `json:"binary_path" yaml:"binary_path"`
	Image      HexImage `json:"image" yaml:"image"`
}
