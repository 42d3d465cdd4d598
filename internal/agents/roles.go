package agents

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"forge/internal/core"
	"forge/internal/llm"
	"forge/pkg/requirements"
)

// SystemArchitect designs the system from validated requirements. With a
// client it asks the model; without one it derives a stock design from the
// project type.
type SystemArchitect struct {
	client   *llm.Client
	settings core.AgentSettings
	logger   core.Logger
}

// NewSystemArchitect creates the system architect role.
func NewSystemArchitect(client *llm.Client, settings core.AgentSettings, logger core.Logger) *SystemArchitect {
	return &SystemArchitect{client: client, settings: settings, logger: logger}
}

func (a *SystemArchitect) Name() string { return RoleSystemArchitect }

func (a *SystemArchitect) Instructions() string {
	return "You are an experienced System Architect. Design component structures, select technology stacks, and pin dependencies."
}

// DesignArchitecture produces the architecture for a validated requirements
// document.
func (a *SystemArchitect) DesignArchitecture(ctx context.Context, projectName, projectType string, doc *requirements.Document) (*ArchitectureDesign, error) {
	if !requirements.Validate(doc) {
		return nil, &core.AgentError{
			Role:    RoleSystemArchitect,
			Op:      "design_architecture",
			Message: "cannot design from an invalid requirements document",
		}
	}

	if a.client == nil {
		return defaultDesign(projectType), nil
	}

	prompt := llm.BuildArchitecturePrompt(projectName, doc)
	design, err := llm.GenerateStructured(a.client, ctx, llm.GenerateOptions{Model: a.settings.Model, Temperature: a.settings.Temperature}, prompt, func(d *ArchitectureDesign) error {
		if len(d.Components) == 0 {
			return fmt.Errorf("design has no components")
		}
		return nil
	})
	if err != nil {
		a.logger.Warn("architecture generation failed, using stock design",
			"project", projectName,
			"error", err.Error(),
		)
		return defaultDesign(projectType), nil
	}

	return design, nil
}

func defaultDesign(projectType string) *ArchitectureDesign {
	design := &ArchitectureDesign{
		Components: []string{"api", "service", "storage"},
		Stack: map[string]string{
			"backend":  "Go",
			"database": "PostgreSQL",
		},
		Dependencies: map[string]string{
			"github.com/spf13/cobra": "v1.10.2",
			"gopkg.in/yaml.v3":       "v3.0.1",
		},
	}

	switch projectType {
	case "web":
		design.Components = append(design.Components, "frontend")
		design.Stack["frontend"] = "React"
		design.Dependencies["react"] = "18.3.0"
	case "mobile":
		design.Components = append(design.Components, "mobile-app")
		design.Stack["mobile"] = "React Native"
	case "cli":
		design.Stack["database"] = "SQLite"
	}

	return design
}

// BackendDeveloper scaffolds the server side of a design.
type BackendDeveloper struct {
	logger core.Logger
}

// NewBackendDeveloper creates the backend developer role.
func NewBackendDeveloper(logger core.Logger) *BackendDeveloper {
	return &BackendDeveloper{logger: logger}
}

func (a *BackendDeveloper) Name() string { return RoleBackendDeveloper }

func (a *BackendDeveloper) Instructions() string {
	return "You are an experienced Backend Developer. Implement services, data models, and APIs from an architecture design."
}

// Implement lists the backend files the design calls for.
func (a *BackendDeveloper) Implement(ctx context.Context, design *ArchitectureDesign) (*ImplementationResult, error) {
	if design == nil {
		return nil, &core.AgentError{Role: RoleBackendDeveloper, Op: "implement", Message: "no architecture design"}
	}

	result := &ImplementationResult{
		Role:  RoleBackendDeveloper,
		Files: []string{"cmd/server/main.go", "internal/api/routes.go"},
	}
	for _, component := range design.Components {
		if component == "frontend" || component == "mobile-app" {
			continue
		}
		result.Files = append(result.Files, fmt.Sprintf("internal/%s/%s.go", component, component))
	}
	if db, ok := design.Stack["database"]; ok {
		result.Files = append(result.Files, "internal/storage/migrations/001_init.sql")
		result.Notes = append(result.Notes, "database: "+db)
	}

	a.logger.Debug("backend scaffold planned", "files", len(result.Files))
	return result, nil
}

// FrontendDeveloper scaffolds the client side of a design. Designs without a
// frontend layer yield an empty result rather than an error.
type FrontendDeveloper struct {
	logger core.Logger
}

// NewFrontendDeveloper creates the frontend developer role.
func NewFrontendDeveloper(logger core.Logger) *FrontendDeveloper {
	return &FrontendDeveloper{logger: logger}
}

func (a *FrontendDeveloper) Name() string { return RoleFrontendDeveloper }

func (a *FrontendDeveloper) Instructions() string {
	return "You are an experienced Frontend Developer. Build user interfaces from an architecture design."
}

// Implement lists the frontend files the design calls for.
func (a *FrontendDeveloper) Implement(ctx context.Context, design *ArchitectureDesign) (*ImplementationResult, error) {
	if design == nil {
		return nil, &core.AgentError{Role: RoleFrontendDeveloper, Op: "implement", Message: "no architecture design"}
	}

	result := &ImplementationResult{Role: RoleFrontendDeveloper, Files: []string{}}

	tech, ok := design.Stack["frontend"]
	if !ok {
		result.Notes = append(result.Notes, "design has no frontend layer")
		return result, nil
	}

	result.Files = append(result.Files,
		"web/src/App.tsx",
		"web/src/index.tsx",
		"web/package.json",
	)
	result.Notes = append(result.Notes, "framework: "+tech)
	return result, nil
}

// DevOpsEngineer plans containerization and CI for a design.
type DevOpsEngineer struct {
	logger core.Logger
}

// NewDevOpsEngineer creates the DevOps engineer role.
func NewDevOpsEngineer(logger core.Logger) *DevOpsEngineer {
	return &DevOpsEngineer{logger: logger}
}

func (a *DevOpsEngineer) Name() string { return RoleDevOpsEngineer }

func (a *DevOpsEngineer) Instructions() string {
	return "You are an experienced DevOps Engineer. Plan containerization, CI pipelines, and deployment."
}

// PlanDeployment produces the deployment plan for a design.
func (a *DevOpsEngineer) PlanDeployment(ctx context.Context, design *ArchitectureDesign) (*DeploymentPlan, error) {
	if design == nil {
		return nil, &core.AgentError{Role: RoleDevOpsEngineer, Op: "plan_deployment", Message: "no architecture design"}
	}

	plan := &DeploymentPlan{
		Platform: "docker",
		Steps: []string{
			"build container image",
			"run test suite",
			"push image to registry",
			"deploy to staging",
		},
		Files: []string{"Dockerfile", "docker-compose.yml", ".github/workflows/ci.yml"},
	}
	if _, ok := design.Stack["database"]; ok {
		plan.Steps = append(plan.Steps, "run database migrations")
	}

	return plan, nil
}

// TechnicalWriter renders project documentation from the pipeline's outputs.
type TechnicalWriter struct {
	logger core.Logger
}

// NewTechnicalWriter creates the technical writer role.
func NewTechnicalWriter(logger core.Logger) *TechnicalWriter {
	return &TechnicalWriter{logger: logger}
}

func (a *TechnicalWriter) Name() string { return RoleTechnicalWriter }

func (a *TechnicalWriter) Instructions() string {
	return "You are an experienced Technical Writer. Produce clear project documentation from requirements and designs."
}

// WriteDocumentation renders a README for the project from its requirements
// and architecture.
func (a *TechnicalWriter) WriteDocumentation(ctx context.Context, name, description string, doc *requirements.Document, design *ArchitectureDesign) (*Documentation, error) {
	if name == "" {
		return nil, &core.AgentError{Role: RoleTechnicalWriter, Op: "write_documentation", Message: "project name is required"}
	}

	var b strings.Builder
	sections := []string{}

	fmt.Fprintf(&b, "# %s\n\n%s\n", name, description)

	if doc != nil && len(doc.Features) > 0 {
		sections = append(sections, "Features")
		b.WriteString("\n## Features\n\n")
		for _, feature := range doc.Features {
			fmt.Fprintf(&b, "- %s\n", feature)
		}
	}

	if doc != nil && len(doc.UserStories) > 0 {
		sections = append(sections, "User Stories")
		b.WriteString("\n## User Stories\n\n")
		for _, story := range doc.UserStories {
			fmt.Fprintf(&b, "- %s\n", story)
		}
	}

	if design != nil && len(design.Stack) > 0 {
		sections = append(sections, "Technology Stack")
		b.WriteString("\n## Technology Stack\n\n")
		layers := make([]string, 0, len(design.Stack))
		for layer := range design.Stack {
			layers = append(layers, layer)
		}
		sort.Strings(layers)
		for _, layer := range layers {
			fmt.Fprintf(&b, "- %s: %s\n", layer, design.Stack[layer])
		}
	}

	return &Documentation{README: b.String(), Sections: sections}, nil
}
