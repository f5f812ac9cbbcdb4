package main

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arozenfe/textspan"
	"github.com/arozenfe/textspan/internal/logger"
)

// columnsCommand constructs the 'columns' subcommand, laying out delimited
// stdin lines as fixed-width columns.
func columnsCommand(a *app) *cobra.Command {
	var (
		noHeader  bool
		noPadding bool
		padLast   bool
	)

	cmd := &cobra.Command{
		Use:   "columns SPEC",
		Short: "Aligns delimited input into fixed-width columns",
		Long: "Reads delimited lines from stdin and prints them as columns.\n\n" +
			"SPEC is a comma-separated list of name[:width[:align]] tokens, " +
			"for example \"name:20,size:8:right\".",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			delimiter := stringFlag(cmd, "delimiter", a.cfg.Columns.Delimiter)
			if delimiter == "" {
				return errors.New("delimiter must not be empty")
			}

			layout, err := textspan.CompileWithOptions(args[0], textspan.Options{
				Separator:     stringFlag(cmd, "separator", a.cfg.Columns.Separator),
				NoPadding:     noPadding,
				PadLastColumn: padLast,
				NoHeader:      noHeader,
				NoUnderline:   noHeader,
			})
			if err != nil {
				return err
			}

			logger.Debug(ctx, "layout compiled",
				zap.String("spec", args[0]),
				zap.Int("columns", len(layout.Columns())),
			)

			out := cmd.OutOrStdout()
			if err := layout.WriteHeader(out); err != nil {
				return errors.Wrap(err, "could not write header")
			}
			if err := layout.WriteUnderline(out); err != nil {
				return errors.Wrap(err, "could not write underline")
			}

			return eachLine(cmd.InOrStdin(), func(line string) error {
				return layout.WriteRow(out, strings.Split(line, delimiter))
			})
		},
	}

	cmd.Flags().StringP("delimiter", "d", "", "Input cell delimiter (default from config)")
	cmd.Flags().StringP("separator", "s", "", "Output column separator (default from config)")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "Skip the header and underline")
	cmd.Flags().BoolVar(&noPadding, "no-padding", false, "Crop cells without padding them")
	cmd.Flags().BoolVar(&padLast, "pad-last", false, "Pad the last column to its width")

	return cmd
}
