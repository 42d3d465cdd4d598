package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"forge/internal/core"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	settings, _, err := loadEnvironment()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("forge configuration"))
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Config file:"), filepath.Join(core.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Projects root:"), settings.ProjectsRoot)
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Default model:"), settings.DefaultModel)
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Log level:"), settings.LogLevel)

	apiKey := dimStyle.Render("not set (pipeline runs offline)")
	if settings.OpenRouterAPIKey != "" {
		apiKey = successStyle.Render("configured")
	}
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("OpenRouter key:"), apiKey)

	fmt.Fprintln(out, labelStyle.Render("Agents:"))
	for _, agent := range []struct {
		name     string
		settings core.AgentSettings
	}{
		{"product_manager", settings.Agents.ProductManager},
		{"system_architect", settings.Agents.SystemArchitect},
		{"backend_developer", settings.Agents.BackendDeveloper},
		{"frontend_developer", settings.Agents.FrontendDeveloper},
		{"devops_engineer", settings.Agents.DevOpsEngineer},
		{"technical_writer", settings.Agents.TechnicalWriter},
	} {
		fmt.Fprintf(out, "  %-20s %s\n", agent.name,
			dimStyle.Render(fmt.Sprintf("%s (temperature %.1f)", agent.settings.Model, agent.settings.Temperature)))
	}

	return nil
}
