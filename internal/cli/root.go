package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"forge/internal/core"
)

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Scaffold projects with a simulated development team",
	Long: `forge runs a pipeline of agent roles (product manager, architect,
developers, DevOps, technical writer) that turns a short project description
into requirements, an architecture, and scaffolding plans.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(modelsCmd)
}

// initConfig resolves settings from defaults, the config file, and
// FORGE_-prefixed environment variables, in increasing precedence.
func initConfig() {
	core.SetDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(core.ConfigDir())

	viper.SetEnvPrefix("FORGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Missing config file is fine; defaults and env cover everything.
	_ = viper.ReadInConfig()
}

// loadEnvironment builds the settings and logger every command starts from.
func loadEnvironment() (*core.Settings, core.Logger, error) {
	settings, err := core.LoadSettings()
	if err != nil {
		return nil, nil, err
	}
	return settings, core.NewLogger(settings.LogLevel), nil
}
