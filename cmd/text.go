package cmd

import (
	"context"
	"io/ioutil"
	"os"

	"github.com/fugue/checksum/checksum"
	"github.com/spf13/cobra"
)

// NewTextCommand returns a command that checksums text arguments
func NewTextCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:     "text [TEXT...]",
		Short:   "Checksum the UTF-8 encoding of text",
		Long:    "Checksum each argument as text. With no arguments, read text from standard input.",
		Aliases: []string{"t"},
		Run: func(cmd *cobra.Command, args []string) {

			ctx := context.Background()
			opts := mustOptions()
			c := newChecksummer(opts, newLogger(opts))
			r := newReporter(opts)

			if len(args) == 0 {
				data, err := ioutil.ReadAll(os.Stdin)
				if err != nil {
					fatal(err)
				}
				sum, err := c.SumInput(ctx, checksum.Text(data))
				r.report("-", sum, err)
				r.finish()
				return
			}
			for _, arg := range args {
				sum, err := c.SumInput(ctx, checksum.Text(arg))
				r.report(arg, sum, err)
			}
			r.finish()
		},
	}
	return cmd
}

func init() {
	rootCmd.AddCommand(NewTextCommand())
}
