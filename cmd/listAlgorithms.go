package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fugue/checksum/format"
	"github.com/fugue/checksum/hash"
	"github.com/spf13/cobra"
)

type listAlgorithmsViewItem struct {
	Name       string
	Identifier string
	DigestSize int
	HexLength  int
	Default    bool
}

func algorithmViewItems() []interface{} {
	var rows []interface{}
	for _, alg := range hash.Algorithms() {
		rows = append(rows, listAlgorithmsViewItem{
			Name:       alg.Name(),
			Identifier: alg.String(),
			DigestSize: alg.Size(),
			HexLength:  2 * alg.Size(),
			Default:    alg == hash.Default,
		})
	}
	return rows
}

// NewListAlgorithmsCommand returns a command that lists supported algorithms
func NewListAlgorithmsCommand() *cobra.Command {

	defaultCols := []string{
		"Name",
		"Identifier",
		"DigestSize",
		"HexLength",
		"Default",
	}

	cmd := &cobra.Command{
		Use:     "algorithms",
		Short:   "List supported hash algorithms",
		Aliases: []string{"a", "algs"},
		Run: func(cmd *cobra.Command, args []string) {

			rows := algorithmViewItems()
			colors := make([]*color.Color, len(rows))
			for i, row := range rows {
				if row.(listAlgorithmsViewItem).Default {
					colors[i] = color.New(color.FgGreen)
				}
			}

			table, err := format.Table(format.TableOpts{
				Rows:       rows,
				Columns:    defaultCols,
				Colors:     colors,
				ShowHeader: true,
			})
			if err != nil {
				fatal(err)
			}
			for _, tableRow := range table {
				fmt.Println(tableRow)
			}
		},
	}
	return cmd
}

func init() {
	listCmd.AddCommand(NewListAlgorithmsCommand())
}
