package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/aalvaropc/teensyflash/internal/infra/hexfile"
	"github.com/aalvaropc/teensyflash/internal/infra/logger"
	"github.com/aalvaropc/teensyflash/internal/infra/scratch"
	"github.com/aalvaropc/teensyflash/internal/infra/toolchain"
	"github.com/aalvaropc/teensyflash/internal/infra/toolexec"
	"github.com/aalvaropc/teensyflash/internal/infra/uartmonitor"
	"github.com/aalvaropc/teensyflash/internal/ports"
	"github.com/aalvaropc/teensyflash/internal/ui/style"
)

// app holds the process-level collaborators. Nil fields fall back to the
// real implementations so tests only override what they need.
type app struct {
	stdout io.Writer
	stderr io.Writer
	theme  style.Theme

	runner        ports.CommandRunner
	scratchParent string
	inspector     ports.HexInspector
	monitor       ports.LogMonitor

	closeLog func() error
}

func defaultApp() *app {
	return &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		theme:  style.DefaultTheme(),
	}
}

func (a *app) log() *slog.Logger {
	return logger.L()
}

func (a *app) setupLogging(debug bool, file string) error {
	cleanup, err := logger.Setup(logger.Config{
		Writer: a.stderr,
		File:   file,
		Debug:  debug,
	})
	if err != nil {
		return err
	}
	a.closeLog = cleanup
	if p := logger.Path(); p != "" {
		logger.L().Info("logger.file.opened", "path", p)
	}
	return nil
}

func (a *app) shutdownLogging() {
	if a.closeLog != nil {
		_ = a.closeLog()
		a.closeLog = nil
	}
}

func (a *app) commandRunner() ports.CommandRunner {
	if a.runner != nil {
		return a.runner
	}
	return toolexec.New(
		toolexec.WithStdout(a.stdout),
		toolexec.WithStderr(a.stderr),
		toolexec.WithLogger(a.log()),
	)
}

func (a *app) scratchSpace() ports.ScratchSpace {
	return scratch.New(scratch.WithParent(a.scratchParent))
}

func (a *app) converter(r ports.CommandRunner, bin string) ports.FirmwareConverter {
	return toolchain.NewObjcopy(r, toolchain.WithObjcopyBinary(bin))
}

func (a *app) loader(r ports.CommandRunner, bin string) ports.DeviceLoader {
	return toolchain.NewTeensyLoader(r, toolchain.WithLoaderBinary(bin))
}

func (a *app) hexInspector() ports.HexInspector {
	if a.inspector != nil {
		return a.inspector
	}
	return hexfile.NewReader()
}

func (a *app) logMonitor() ports.LogMonitor {
	if a.monitor != nil {
		return a.monitor
	}
	return uartmonitor.New(uartmonitor.WithLogger(a.log()))
}
