package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fugue/checksum/checksum"
	"github.com/spf13/cobra"
)

// parseNumber parses a decimal integer or floating point argument
func parseNumber(s string) (checksum.Number, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return checksum.Int(i), nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return checksum.Uint(u), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return checksum.Number{}, fmt.Errorf("Invalid number: %q", s)
	}
	return checksum.Float(f), nil
}

// NewNumberCommand returns a command that checksums numeric arguments
func NewNumberCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:     "number NUMBER...",
		Short:   "Checksum the decimal string form of numbers",
		Aliases: []string{"n"},
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {

			ctx := context.Background()
			opts := mustOptions()
			c := newChecksummer(opts, newLogger(opts))
			r := newReporter(opts)

			for _, arg := range args {
				n, err := parseNumber(arg)
				if err != nil {
					r.report(arg, "", err)
					continue
				}
				sum, err := c.SumInput(ctx, n)
				r.report(n.String(), sum, err)
			}
			r.finish()
		},
	}
	return cmd
}

func init() {
	rootCmd.AddCommand(NewNumberCommand())
}
