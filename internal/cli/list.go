package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"forge/internal/project"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects under the projects root",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	settings, _, err := loadEnvironment()
	if err != nil {
		return err
	}

	store := project.NewStore(settings.ProjectsRoot)
	projects, warnings := store.List()

	for _, warning := range warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("warning: "+warning.Error()))
	}

	if len(projects) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("No projects yet. Run 'forge create <name>' to start one."))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(fmt.Sprintf("Projects (%d)", len(projects))))
	for _, p := range projects {
		line := fmt.Sprintf("%s  %s", labelStyle.Render(p.Name), p.Description)
		details := []string{p.ID, p.Type}
		if len(p.Features) > 0 {
			details = append(details, fmt.Sprintf("%d features", len(p.Features)))
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
		fmt.Fprintln(cmd.OutOrStdout(), "  "+dimStyle.Render(strings.Join(details, ", ")))
	}

	return nil
}
