package main

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arozenfe/textspan"
	"github.com/arozenfe/textspan/internal/logger"
)

// padCommand constructs the 'pad' subcommand, shaping each input line to a
// fixed width.
func padCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pad [text...]",
		Short: "Pads or crops each line to a fixed width",
		Long: "Pads or crops each argument, or each line read from stdin when no " +
			"arguments are given, to exactly --width bytes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			width := intFlag(cmd, "width", a.cfg.Pad.Width)
			char := stringFlag(cmd, "char", a.cfg.Pad.Char)
			side, err := textspan.ParseSide(stringFlag(cmd, "side", a.cfg.Pad.Side))
			if err != nil {
				return errors.Wrap(err, "could not parse --side")
			}

			logger.Debug(ctx, "padding lines",
				zap.Int("width", width),
				zap.Stringer("side", side),
				zap.String("char", char),
			)

			shape := func(line string) string {
				return textspan.Span(side, char, width, line)
			}

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, arg := range args {
					if _, err := fmt.Fprintln(out, shape(arg)); err != nil {
						return errors.Wrap(err, "could not write output")
					}
				}
				return nil
			}

			return eachLine(cmd.InOrStdin(), func(line string) error {
				_, err := fmt.Fprintln(out, shape(line))
				return err
			})
		},
	}

	cmd.Flags().IntP("width", "w", 0, "Target width (default from config)")
	cmd.Flags().String("side", "", "Pad side: before or after (default from config)")
	cmd.Flags().String("char", "", "Pad character (default from config)")

	return cmd
}

// eachLine calls fn for every line of r, without line terminators. Lines
// may be of any length.
func eachLine(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return errors.Wrap(err, "could not write output")
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "could not read input")
	}
	return nil
}
