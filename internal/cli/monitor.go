package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/teensyflash/internal/infra/uartmonitor"
)

func monitorCmd(a *app) *cobra.Command {
	var port string
	var baud int
	var list bool

	c := &cobra.Command{
		Use:   "monitor",
		Short: "Stream the board's UART log output (pin 1) from a serial adapter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if list {
				return listPorts(cmd, a)
			}
			if port == "" {
				return fmt.Errorf("serial port is required (use --port or -p, or --list to see available ports)")
			}
			return streamLog(cmd, a, port, baud)
		},
	}

	c.Flags().StringVarP(&port, "port", "p", "", "Serial port connected to UART pin 1 (e.g. /dev/ttyUSB0)")
	c.Flags().IntVarP(&baud, "baud", "b", uartmonitor.DefaultBaud, "Baud rate")
	c.Flags().BoolVar(&list, "list", false, "List available serial ports and exit")
	return c
}

func listPorts(cmd *cobra.Command, a *app) error {
	names, err := a.logMonitor().ListPorts()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(w, "(no serial ports found)")
		return nil
	}
	for _, n := range names {
		fmt.Fprintf(w, "- %s\n", n)
	}
	return nil
}

// streamLog blocks until the user interrupts or the port closes.
func streamLog(cmd *cobra.Command, a *app, port string, baud int) error {
	fmt.Fprintln(cmd.ErrOrStderr(), a.theme.Faint.Render(
		fmt.Sprintf("Monitoring %s at %d baud (Ctrl-C to stop)", port, baud),
	))
	return a.logMonitor().Stream(cmd.Context(), port, baud, cmd.OutOrStdout())
}
