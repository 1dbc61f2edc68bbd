package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/teensyflash/internal/domain"
	"github.com/aalvaropc/teensyflash/internal/infra/toolchain"
	"github.com/aalvaropc/teensyflash/internal/infra/uartmonitor"
	"github.com/aalvaropc/teensyflash/internal/usecase"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], defaultApp())
	stop()
	os.Exit(code)
}

// run executes the command tree for args and returns the process exit code.
func run(ctx context.Context, args []string, a *app) int {
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	err := cmd.ExecuteContext(ctx)
	a.shutdownLogging()
	if err == nil {
		return 0
	}

	// The usage message was already printed on stdout.
	if !domain.IsKind(err, domain.KindUsage) {
		fmt.Fprintf(a.stderr, "%s %s\n", a.theme.Error.Render("teensyflash:"), userMessage(err))
	}
	return exitCode(err)
}

const rootLong = `Convert a firmware binary to Intel HEX and flash it to a Teensy MicroMod.

The binary path is passed to the tools as given. Use -- before a path that
starts with a dash, e.g. teensyflash -- -fw.elf.`

type rootFlags struct {
	debug   bool
	logFile string
	objcopy string
}

func newRootCmd(a *app) *cobra.Command {
	var rf rootFlags
	var loaderBin string
	var format string
	var monitorPort string
	var baud int

	cmd := &cobra.Command{
		Use:           "teensyflash <binary>",
		Short:         "Convert a firmware binary to Intel HEX and flash it to a Teensy MicroMod",
		Long:          rootLong,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setupLogging(rf.debug, rf.logFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || args[0] == "" {
				return usageError(cmd)
			}
			if err := checkFormat(format); err != nil {
				return err
			}

			runner := a.commandRunner()
			uc := usecase.NewFlashFirmware(
				a.scratchSpace(),
				a.converter(runner, rf.objcopy),
				a.loader(runner, loaderBin),
				usecase.WithFlashLogger(a.log()),
			)

			res, err := uc.Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if err := printFlashResult(cmd.OutOrStdout(), a.theme, res, format); err != nil {
				return err
			}

			if monitorPort == "" {
				return nil
			}
			return streamLog(cmd, a, monitorPort, baud)
		},
	}

	cmd.PersistentFlags().BoolVar(&rf.debug, "debug", false, "enable verbose JSON logging to stderr")
	cmd.PersistentFlags().StringVar(&rf.logFile, "log-file", "", "write logs to this file instead of stderr")
	cmd.PersistentFlags().StringVar(&rf.objcopy, "objcopy", toolchain.DefaultObjcopy, "objcopy executable used for the Intel HEX conversion")

	cmd.Flags().StringVar(&loaderBin, "loader", toolchain.DefaultTeensyLoader, "loader executable used to program the board")
	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json|yaml")
	cmd.Flags().StringVarP(&monitorPort, "monitor", "m", "", "after flashing, stream the UART log from this serial port")
	cmd.Flags().IntVar(&baud, "baud", uartmonitor.DefaultBaud, "baud rate for --monitor")

	cmd.AddCommand(inspectCmd(a, &rf))
	cmd.AddCommand(monitorCmd(a))
	cmd.AddCommand(versionCmd())
	return cmd
}

func usageError(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.OutOrStdout(), domain.UsageMessage)
	return &domain.OpError{Op: "cli.args", Kind: domain.KindUsage, Err: domain.ErrUsage}
}
