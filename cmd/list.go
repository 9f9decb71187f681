package cmd

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported items",
}

func init() {
	rootCmd.AddCommand(listCmd)
}
