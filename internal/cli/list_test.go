package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forge/internal/project"
)

func TestRunListEmpty(t *testing.T) {
	resetConfig(t)
	viper.Set("projects_root", t.TempDir())

	var out bytes.Buffer
	listCmd.SetOut(&out)
	listCmd.SetErr(&out)

	require.NoError(t, runList(listCmd, nil))
	assert.Contains(t, out.String(), "No projects yet")
}

func TestRunListShowsProjects(t *testing.T) {
	resetConfig(t)
	root := t.TempDir()
	viper.Set("projects_root", root)

	store := project.NewStore(root)
	require.NoError(t, store.SaveSettings(&project.Settings{
		ID:          "PROJ-abc123",
		Name:        "taskmaster",
		Description: "A collaborative task manager",
		Type:        "web",
		Features:    []string{"auth", "search"},
	}))

	var out bytes.Buffer
	listCmd.SetOut(&out)
	listCmd.SetErr(&out)

	require.NoError(t, runList(listCmd, nil))
	assert.Contains(t, out.String(), "taskmaster")
	assert.Contains(t, out.String(), "PROJ-abc123")
	assert.Contains(t, out.String(), "2 features")
}

func TestRunModelsOffline(t *testing.T) {
	resetConfig(t)

	var out bytes.Buffer
	modelsCmd.SetOut(&out)
	modelsCmd.SetErr(&out)

	require.NoError(t, runModels(modelsCmd, nil))
	assert.Contains(t, out.String(), "anthropic/claude-3.5-sonnet")
	assert.Contains(t, out.String(), "openai/gpt-4o")
	assert.Contains(t, out.String(), "openrouter_api_key")
}

func TestRunConfigShowsRoster(t *testing.T) {
	resetConfig(t)

	var out bytes.Buffer
	configCmd.SetOut(&out)
	configCmd.SetErr(&out)

	require.NoError(t, runConfig(configCmd, nil))
	assert.Contains(t, out.String(), "product_manager")
	assert.Contains(t, out.String(), "technical_writer")
	assert.Contains(t, out.String(), "anthropic/claude-3.5-sonnet")
}
