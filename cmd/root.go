// Copyright 2020 Fugue, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "checksum",
	Short:   "Compute checksums of files, text, numbers and structured data",
	Version: fmt.Sprintf("%s, build %s", Version, GitCommit),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Flags available to all subcommands
	rootCmd.PersistentFlags().StringP("algorithm", "a", "SHA-1", "Hash algorithm (SHA-1 | SHA-256 | SHA-384 | SHA-512)")
	rootCmd.PersistentFlags().String("region", "us-east-2", "AWS region used for s3:// locations")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output mode (text | json)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text | json)")

	// Bind flags to environment variables if they are present
	viper.BindPFlag("algorithm", rootCmd.PersistentFlags().Lookup("algorithm"))
	viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.RegisterFlagCompletionFunc("algorithm", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return algorithmNames(), cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {

	// Environment variables will be prefixed with "CHECKSUM_"
	viper.SetEnvPrefix("checksum")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	home, err := os.UserHomeDir()
	if err != nil {
		fatal(err)
	}
	// Search config in home directory with name ".checksum" (without extension)
	viper.AddConfigPath(home)
	viper.SetConfigName(".checksum")

	viper.AutomaticEnv()
	viper.ReadInConfig()
}
