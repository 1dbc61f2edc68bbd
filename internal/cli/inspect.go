package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/teensyflash/internal/usecase"
)

func inspectCmd(a *app, rf *rootFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "inspect <binary>",
		Short: "Convert a binary to Intel HEX and summarize it without flashing",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || args[0] == "" {
				return usageError(cmd)
			}
			if err := checkFormat(format); err != nil {
				return err
			}

			uc := usecase.NewInspectFirmware(
				a.scratchSpace(),
				a.converter(a.commandRunner(), rf.objcopy),
				a.hexInspector(),
				a.log(),
			)

			out, err := uc.Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printInspectResult(cmd.OutOrStdout(), a.theme, out, format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json|yaml")
	return c
}
