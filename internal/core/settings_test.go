package core

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "anthropic/claude-3.5-sonnet", s.DefaultModel)
	assert.Equal(t, "info", s.LogLevel)
	assert.NotEmpty(t, s.ProjectsRoot)
	assert.NotEmpty(t, s.TemplatesDir)

	// Every role gets a model and temperature without a config file.
	roster := []AgentSettings{
		s.Agents.ProductManager,
		s.Agents.SystemArchitect,
		s.Agents.BackendDeveloper,
		s.Agents.FrontendDeveloper,
		s.Agents.DevOpsEngineer,
		s.Agents.TechnicalWriter,
	}
	for _, agent := range roster {
		assert.Equal(t, "anthropic/claude-3.5-sonnet", agent.Model)
		assert.InDelta(t, 0.7, agent.Temperature, 0.0001)
	}
}

func TestLoadSettingsOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("agents.product_manager.temperature", 0.2)
	viper.Set("log_level", "warn")

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.InDelta(t, 0.2, s.Agents.ProductManager.Temperature, 0.0001)
	assert.Equal(t, "warn", s.LogLevel)
}

func TestLoadSettingsDebugOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	t.Setenv("DEBUG", "1")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestProjectDir(t *testing.T) {
	s := &Settings{ProjectsRoot: filepath.Join("tmp", "projects")}
	assert.Equal(t, filepath.Join("tmp", "projects", "demo"), s.ProjectDir("demo"))
}
