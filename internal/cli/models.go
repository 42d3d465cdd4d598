package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"forge/internal/llm"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models agent roles can be configured with",
	RunE:  runModels,
}

func runModels(cmd *cobra.Command, args []string) error {
	settings, logger, err := loadEnvironment()
	if err != nil {
		return err
	}

	registered := false
	if settings.OpenRouterAPIKey != "" {
		client, err := llm.NewClient(&llm.Config{
			APIKey:       settings.OpenRouterAPIKey,
			BaseURL:      llm.OpenRouterBaseURL,
			DefaultModel: settings.DefaultModel,
		})
		if err != nil {
			return err
		}
		if _, err := llm.RegisterOpenRouterModels(cmd.Context(), client); err != nil {
			return err
		}
		logger.Debug("models registered with genkit")
		registered = true
	}

	models := llm.DefaultModels()
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Available models"))
	for _, name := range names {
		model := models[name]
		marker := " "
		if name == settings.DefaultModel {
			marker = successStyle.Render("*")
		}
		fmt.Fprintf(out, "%s %s\n", marker, labelStyle.Render(name))
		fmt.Fprintf(out, "    %s\n", dimStyle.Render(fmt.Sprintf("%s, %d token context", model.Description, model.ContextWindow)))
	}

	if !registered {
		fmt.Fprintln(out, dimStyle.Render("Set openrouter_api_key to register these with the model registry."))
	}
	return nil
}
