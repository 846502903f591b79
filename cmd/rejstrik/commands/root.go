// Package commands implements the CLI commands for rejstrik.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prozkosny/pydata-zdenka/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "rejstrik",
	Short: "Commercial-registry XML extract to spreadsheet converter",
	Long: `Rejstrik reshapes a commercial-registry full-extract XML document
(výpis z obchodního rejstříku) into four related tables: basic entity
info, statutory-body members, oversight-committee members and declared
business activities.

Examples:
  # Convert an extract to a multi-sheet workbook
  rejstrik extract -i vypis.xml -o vypis.xlsx

  # Emit the tables as JSON instead
  rejstrik extract -i vypis.xml --format json -o vypis.json

  # Rename the output sheets
  rejstrik extract -i vypis.xml -o vypis.xlsx --profile sheets.yaml`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Debug: viper.GetBool("debug"),
			Quiet: viper.GetBool("quiet"),
		})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.rejstrik.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".rejstrik")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("REJSTRIK")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
