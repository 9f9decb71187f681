package cmd

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io/ioutil"

	"github.com/fugue/checksum/checksum"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewBufferCommand returns a command that checksums a raw byte buffer
func NewBufferCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:     "buffer [LOCATION]",
		Short:   "Checksum raw bytes, optionally given as hex text",
		Aliases: []string{"b"},
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {

			ctx := context.Background()
			opts := mustOptions()
			c := newChecksummer(opts, newLogger(opts))
			rep := newReporter(opts)

			var location string
			if len(args) > 0 {
				location = args[0]
			}
			r, name, err := openLocation(ctx, newOpener(opts), location)
			if err != nil {
				fatal(err)
			}
			data, err := ioutil.ReadAll(r)
			r.Close()
			if err != nil {
				fatal(err)
			}
			if viper.GetBool("hex") {
				if data, err = decodeHex(data); err != nil {
					fatal(err)
				}
			}
			sum, err := c.SumInput(ctx, checksum.Buffer(data))
			rep.report(name, sum, err)
			rep.finish()
		},
	}

	cmd.Flags().Bool("hex", false, "Input is hex encoded")
	viper.BindPFlag("hex", cmd.Flags().Lookup("hex"))

	return cmd
}

// decodeHex decodes hex text, ignoring surrounding whitespace
func decodeHex(text []byte) ([]byte, error) {
	text = bytes.TrimSpace(text)
	out := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(out, text); err != nil {
		return nil, fmt.Errorf("Invalid hex input: %s", err)
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(NewBufferCommand())
}
