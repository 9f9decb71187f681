package cmd

import (
	"context"
	"io"
	"io/ioutil"
	"os"

	"github.com/fugue/checksum/checksum"
	"github.com/fugue/checksum/source"
	"github.com/spf13/cobra"
)

// openLocation opens a location for reading, treating "" and "-" as stdin
func openLocation(ctx context.Context, opener source.Opener, location string) (io.ReadCloser, string, error) {
	if location == "" || location == "-" {
		return ioutil.NopCloser(os.Stdin), "-", nil
	}
	r, err := opener.Open(ctx, location)
	return r, location, err
}

func sumLocation(ctx context.Context, c *checksum.Checksummer, opener source.Opener, location string) (string, string, error) {
	r, name, err := openLocation(ctx, opener, location)
	if err != nil {
		return "", name, err
	}
	defer r.Close()
	sum, err := c.SumInput(ctx, checksum.NewFile(name, r))
	return sum, name, err
}

// NewFileCommand returns a command that checksums files
func NewFileCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "file [LOCATION...]",
		Short: "Checksum files, s3:// objects or http(s):// URLs",
		Long: `Checksum the full contents of each location. A location is a local
path, a file:// URL, an s3://bucket/key object or an http(s) URL.
With no location, or when the location is "-", read standard input.`,
		Aliases: []string{"f"},
		Run: func(cmd *cobra.Command, args []string) {

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			closeHandler(cancel)

			opts := mustOptions()
			c := newChecksummer(opts, newLogger(opts))
			opener := newOpener(opts)
			r := newReporter(opts)

			if len(args) == 0 {
				args = []string{"-"}
			}
			for _, location := range args {
				sum, name, err := sumLocation(ctx, c, opener, location)
				r.report(name, sum, err)
			}
			r.finish()
		},
	}
	return cmd
}

func init() {
	rootCmd.AddCommand(NewFileCommand())
}
