package cli

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"forge/internal/core"
	"forge/internal/llm"
	"forge/internal/pipeline"
	"forge/internal/project"
)

var projectNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

var (
	createDescription string
	createType        string
	createFeatures    []string
	createOutputDir   string
	createOffline     bool
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new project through the agent pipeline",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "project description")
	createCmd.Flags().StringVarP(&createType, "type", "t", "web", "project type (web, mobile, cli, desktop)")
	createCmd.Flags().StringSliceVarP(&createFeatures, "feature", "f", nil, "requested feature (repeatable)")
	createCmd.Flags().StringVarP(&createOutputDir, "output", "o", "", "output directory (defaults to projects root)")
	createCmd.Flags().BoolVar(&createOffline, "offline", false, "skip the model and use template requirements")
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := validateProjectName(name); err != nil {
		return err
	}

	settings, logger, err := loadEnvironment()
	if err != nil {
		return err
	}

	store := project.NewStore(settings.ProjectsRoot)
	if store.Exists(name) {
		return &core.ValidationError{Field: "name", Message: fmt.Sprintf("project %q already exists", name)}
	}

	description := createDescription
	if description == "" {
		description, err = promptLine(cmd.InOrStdin(), cmd.OutOrStdout(), "Project description: ")
		if err != nil {
			return err
		}
	}

	cfg := &project.Config{
		Name:        name,
		Description: description,
		Type:        createType,
		Features:    createFeatures,
		OutputDir:   createOutputDir,
	}

	client, err := buildClient(settings, logger)
	if err != nil {
		return err
	}

	exec := pipeline.NewAgentExecutor(client, settings, logger)
	p := pipeline.New(exec, store, logger)

	fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("Creating project "+name))

	report, err := p.Run(cmd.Context(), cfg)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("pipeline failed: "+err.Error()))
		return err
	}

	printReport(cmd.OutOrStdout(), store, report)
	return nil
}

// buildClient returns a client when an API key is configured, nil otherwise.
// A nil client runs every role offline from templates.
func buildClient(settings *core.Settings, logger core.Logger) (*llm.Client, error) {
	if createOffline || settings.OpenRouterAPIKey == "" {
		if !createOffline {
			logger.Warn("no openrouter_api_key configured, running offline")
		}
		return nil, nil
	}

	return llm.NewClient(&llm.Config{
		APIKey:       settings.OpenRouterAPIKey,
		BaseURL:      llm.OpenRouterBaseURL,
		DefaultModel: settings.DefaultModel,
	})
}

func printReport(w io.Writer, store *project.Store, report *pipeline.RunReport) {
	fmt.Fprintln(w, successStyle.Render("Project created"))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Run:"), report.RunID)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Location:"), store.Dir(report.Project))

	fmt.Fprintln(w, labelStyle.Render("Features by priority:"))
	for _, fp := range report.Analysis.PrioritizedFeatures {
		fmt.Fprintf(w, "  %s %s\n", fp.Feature, dimStyle.Render(fmt.Sprintf("(%.2f)", fp.Priority)))
	}

	if report.Deployment != nil {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Deployment:"), report.Deployment.Platform)
	}
}

// validateProjectName rejects names that would not work as a directory name
// or module identifier.
func validateProjectName(name string) error {
	if !projectNamePattern.MatchString(name) {
		return &core.ValidationError{
			Field:   "name",
			Message: "must start with a letter and contain only letters, digits, hyphens, and underscores",
		}
	}
	return nil
}

// promptLine reads one line of input, interactive-session style.
func promptLine(in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
