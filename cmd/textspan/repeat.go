package main

import (
	"fmt"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/arozenfe/textspan"
)

// repeatCommand constructs the 'repeat' subcommand printing a run of a
// repeated character.
func repeatCommand() *cobra.Command {
	var char string

	cmd := &cobra.Command{
		Use:   "repeat N",
		Short: "Prints a character repeated N times",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), textspan.SpanChar(n, char))
			return err
		},
	}

	cmd.Flags().StringVar(&char, "char", "-", "Character to repeat")

	return cmd
}

// rangeCommand constructs the 'range' subcommand printing 1..N.
func rangeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "range N",
		Short: "Prints the integers 1 through N, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, i := range textspan.Range(n) {
				if _, err := fmt.Fprintln(out, i); err != nil {
					return errors.Wrap(err, "could not write output")
				}
			}
			return nil
		},
	}
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid count %q", s)
	}
	return n, nil
}
