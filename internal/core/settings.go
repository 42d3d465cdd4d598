package core

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// AgentSettings configures an individual agent role.
type AgentSettings struct {
	Model              string  `mapstructure:"model"`
	Temperature        float64 `mapstructure:"temperature"`
	MaxTokens          int     `mapstructure:"max_tokens"`
	CustomInstructions string  `mapstructure:"custom_instructions"`
}

// AgentRoster holds the per-role agent configurations.
type AgentRoster struct {
	ProductManager    AgentSettings `mapstructure:"product_manager"`
	SystemArchitect   AgentSettings `mapstructure:"system_architect"`
	BackendDeveloper  AgentSettings `mapstructure:"backend_developer"`
	FrontendDeveloper AgentSettings `mapstructure:"frontend_developer"`
	DevOpsEngineer    AgentSettings `mapstructure:"devops_engineer"`
	TechnicalWriter   AgentSettings `mapstructure:"technical_writer"`
}

// Settings is the global forge configuration, loaded from the config file
// and FORGE_-prefixed environment variables.
type Settings struct {
	OpenRouterAPIKey string `mapstructure:"openrouter_api_key"`
	DefaultModel     string `mapstructure:"default_model"`

	ProjectsRoot string `mapstructure:"projects_root"`
	TemplatesDir string `mapstructure:"templates_dir"`

	LogLevel string `mapstructure:"log_level"`

	Agents AgentRoster `mapstructure:"agents"`
}

const (
	defaultModel       = "anthropic/claude-3.5-sonnet"
	defaultTemperature = 0.7
)

// ConfigDir returns the directory holding the forge config file.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".forge"
	}
	return filepath.Join(home, ".config", "forge")
}

// SetDefaults registers default values so settings resolve even without a
// config file.
func SetDefaults() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	viper.SetDefault("default_model", defaultModel)
	viper.SetDefault("projects_root", filepath.Join(home, ".forge", "projects"))
	viper.SetDefault("templates_dir", filepath.Join(home, ".forge", "templates"))
	viper.SetDefault("log_level", "info")

	for _, role := range []string{
		"product_manager",
		"system_architect",
		"backend_developer",
		"frontend_developer",
		"devops_engineer",
		"technical_writer",
	} {
		viper.SetDefault("agents."+role+".model", defaultModel)
		viper.SetDefault("agents."+role+".temperature", defaultTemperature)
	}
}

// LoadSettings unmarshals the resolved viper state into Settings.
func LoadSettings() (*Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, &ValidationError{Field: "settings", Message: "failed to decode configuration", Err: err}
	}

	// DEBUG=1 overrides the configured log level.
	if os.Getenv("DEBUG") == "1" {
		s.LogLevel = "debug"
	}

	return &s, nil
}

// ProjectDir returns the output directory for a named project.
func (s *Settings) ProjectDir(name string) string {
	return filepath.Join(s.ProjectsRoot, name)
}
