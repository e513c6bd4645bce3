// Package cli is for command line interactions with the swath aligner.
package cli

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "swath",
	Short: `Local sequence alignment with exhaustive co-optimal traceback.
Scores a query against a subject with a length-dependent gap model and
reports every alignment that reaches the maximum score`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig merges an optional swath.yaml from the working directory or the
// user's home directory, then SWATH_* environment variables, under the flags.
func initConfig() {
	viper.SetConfigName("swath")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	viper.SetEnvPrefix("swath")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine, flags and defaults cover everything.
	_ = viper.ReadInConfig()
}
