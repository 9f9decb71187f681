package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/go-yaml/yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// decodeDocument decodes a JSON or YAML document into plain Go values.
// JSON numbers are kept as json.Number so they hash exactly as written.
func decodeDocument(r io.Reader, docFormat string) (interface{}, error) {

	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var value interface{}
	switch docFormat {
	case "json", "":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("Failed to decode JSON: %s", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &value); err != nil {
			return nil, fmt.Errorf("Failed to decode YAML: %s", err)
		}
		value = stringKeys(value)
	default:
		return nil, fmt.Errorf("Unknown document format: %s", docFormat)
	}
	return value, nil
}

// stringKeys converts the map[interface{}]interface{} values produced by
// the YAML decoder into map[string]interface{} so they can be serialized
func stringKeys(value interface{}) interface{} {
	switch v := value.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for key, item := range v {
			m[fmt.Sprintf("%v", key)] = stringKeys(item)
		}
		return m
	case map[string]interface{}:
		for key, item := range v {
			v[key] = stringKeys(item)
		}
		return v
	case []interface{}:
		for i, item := range v {
			v[i] = stringKeys(item)
		}
		return v
	}
	return value
}

// NewObjectCommand returns a command that checksums structured documents
func NewObjectCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "object [LOCATION]",
		Short: "Checksum a JSON or YAML document as a structured value",
		Long: `Decode a document and checksum its canonical JSON form. Object keys
are sorted, so documents that differ only in key order share a checksum.
With no location, or when the location is "-", read standard input.`,
		Aliases: []string{"o"},
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {

			ctx := context.Background()
			opts := mustOptions()
			logger := newLogger(opts)
			c := newChecksummer(opts, logger)
			rep := newReporter(opts)

			var location string
			if len(args) > 0 {
				location = args[0]
			}
			r, name, err := openLocation(ctx, newOpener(opts), location)
			if err != nil {
				fatal(err)
			}
			value, err := decodeDocument(r, viper.GetString("format"))
			r.Close()
			if err != nil {
				fatal(err)
			}
			sum, err := c.Sum(ctx, value)
			rep.report(name, sum, err)
			rep.finish()
		},
	}

	cmd.Flags().StringP("format", "f", "json", "Document format (json | yaml)")
	viper.BindPFlag("format", cmd.Flags().Lookup("format"))

	return cmd
}

func init() {
	rootCmd.AddCommand(NewObjectCommand())
}
