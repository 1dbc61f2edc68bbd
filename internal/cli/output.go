package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/teensyflash/internal/domain"
	"github.com/aalvaropc/teensyflash/internal/ui/style"
)

func checkFormat(format string) error {
	switch format {
	case "pretty", "", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|yaml)", format)
	}
}

func printFlashResult(w io.Writer, th style.Theme, res domain.FlashResult, format string) error {
	switch format {
	case "pretty", "":
		fmt.Fprintln(w, th.Success.Render(res.Message))
		return nil
	default:
		return encode(w, res, format)
	}
}

func printInspectResult(w io.Writer, th style.Theme, out domain.InspectResult, format string) error {
	switch format {
	case "pretty", "":
		printPrettyInspect(w, th, out)
		return nil
	default:
		return encode(w, out, format)
	}
}

func encode(w io.Writer, v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return checkFormat(format)
	}
}

func printPrettyInspect(w io.Writer, th style.Theme, out domain.InspectResult) {
	img := out.Image

	fmt.Fprintln(w, th.Title.Render("Intel HEX image"))
	fmt.Fprintf(w, "%s%s\n", field(th, "Binary:"), out.BinaryPath)
	fmt.Fprintf(w, "%s%d\n", field(th, "Segments:"), len(img.Segments))
	for _, s := range img.Segments {
		fmt.Fprintf(w, "  - 0x%08X  %d bytes\n", s.Address, s.Size)
	}
	fmt.Fprintf(w, "%s%d bytes\n", field(th, "Total:"), img.TotalBytes)
	if img.StartAddress != nil {
		fmt.Fprintf(w, "%s0x%08X\n", field(th, "Start:"), *img.StartAddress)
	}
}

// field renders a label padded to a fixed column; padding stays outside the
// style so it survives rendering.
func field(th style.Theme, name string) string {
	const width = 10
	pad := width - len(name)
	if pad < 1 {
		pad = 1
	}
	return th.Label.Render(name) + strings.Repeat(" ", pad)
}
