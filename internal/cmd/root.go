// Package cmd defines the titlesift command-line interface.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/junyuh/titlesift/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "titlesift",
	Short: "Rule-based title listing filter",
	Long: `Titlesift filters a listing of titles with a small rule language:
semicolon-separated AND groups, pipe-separated OR alternatives, and
/regex/ terms, matched case-insensitively across Simplified and
Traditional Chinese script variants of both rule and title.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/titlesift/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TITLESIFT")
	// TITLESIFT_FILTER_DEBOUNCE_MS overrides filter.debounce_ms, etc.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
