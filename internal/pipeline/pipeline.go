package pipeline

import (
	"context"
	"fmt"

	"forge/internal/agents"
	"forge/internal/core"
	"forge/internal/project"
	"forge/pkg/requirements"
)

// Phase names, in run order.
const (
	PhaseRequirements   = "requirements"
	PhaseImplementation = "implementation"
	PhaseDelivery       = "delivery"
)

// RunReport collects everything a pipeline run produced.
type RunReport struct {
	RunID   string   `json:"run_id" yaml:"run_id"`
	Project string   `json:"project" yaml:"project"`
	Phases  []string `json:"phases" yaml:"phases"`

	Requirements  *requirements.Document       `json:"requirements" yaml:"requirements"`
	Analysis      requirements.Analysis        `json:"analysis" yaml:"analysis"`
	Design        *agents.ArchitectureDesign   `json:"design" yaml:"design"`
	Backend       *agents.ImplementationResult `json:"backend" yaml:"backend"`
	Frontend      *agents.ImplementationResult `json:"frontend" yaml:"frontend"`
	Deployment    *agents.DeploymentPlan       `json:"deployment" yaml:"deployment"`
	Documentation *agents.Documentation        `json:"documentation" yaml:"documentation"`
}

// Pipeline runs the three-phase project creation flow: requirements and
// architecture, implementation, then delivery (deployment plan and docs).
// State is persisted after each phase so a failed run leaves the completed
// phases on disk.
type Pipeline struct {
	exec   Executor
	store  *project.Store
	logger core.Logger
}

// New creates a pipeline over an executor and a project store.
func New(exec Executor, store *project.Store, logger core.Logger) *Pipeline {
	return &Pipeline{exec: exec, store: store, logger: logger}
}

// Run executes the full pipeline for a project config. The project directory
// is locked for the duration of the run.
func (p *Pipeline) Run(ctx context.Context, cfg *project.Config) (*RunReport, error) {
	if !cfg.Valid() {
		return nil, &core.ValidationError{Field: "project", Message: "name and description are required"}
	}

	runID, err := project.NewRunID()
	if err != nil {
		return nil, fmt.Errorf("generate run id: %w", err)
	}

	lockPath, err := p.store.LockPath(cfg.Name)
	if err != nil {
		return nil, err
	}
	lock := project.NewFileLock(lockPath, "cli")
	if err := lock.Acquire(); err != nil {
		return nil, &core.LockError{Operation: "acquire", Message: err.Error(), Err: err}
	}
	defer func() {
		if err := lock.Release(); err != nil {
			p.logger.Warn("failed to release project lock", "project", cfg.Name, "error", err.Error())
		}
	}()

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = p.store.Dir(cfg.Name)
	}
	settings, err := project.NewSettings(cfg, outputDir)
	if err != nil {
		return nil, fmt.Errorf("create project settings: %w", err)
	}

	report := &RunReport{RunID: runID, Project: cfg.Name}
	p.logger.Info("pipeline run started", "run_id", runID, "project", cfg.Name)

	if err := p.runRequirementsPhase(ctx, cfg, settings, report); err != nil {
		return nil, err
	}
	report.Phases = append(report.Phases, PhaseRequirements)

	if err := p.runImplementationPhase(ctx, report); err != nil {
		return nil, err
	}
	report.Phases = append(report.Phases, PhaseImplementation)

	if err := p.runDeliveryPhase(ctx, cfg, report); err != nil {
		return nil, err
	}
	report.Phases = append(report.Phases, PhaseDelivery)

	p.logger.Info("pipeline run completed",
		"run_id", runID,
		"project", cfg.Name,
		"features", len(report.Requirements.Features),
	)
	return report, nil
}

// runRequirementsPhase gathers requirements, analyzes them, designs the
// architecture, and persists forge.yaml plus requirements.yaml.
func (p *Pipeline) runRequirementsPhase(ctx context.Context, cfg *project.Config, settings *project.Settings, report *RunReport) error {
	doc, err := p.exec.GatherRequirements(ctx, cfg)
	if err != nil {
		return fmt.Errorf("%s phase: %w", PhaseRequirements, err)
	}
	report.Requirements = doc

	report.Analysis = p.exec.AnalyzeRequirements(doc)
	if !report.Analysis.IsValid {
		return &core.AgentError{
			Role:    agents.RoleProductManager,
			Op:      "gather_requirements",
			Message: "gathered requirements failed validation",
		}
	}

	design, err := p.exec.DesignArchitecture(ctx, cfg.Name, cfg.Type, doc)
	if err != nil {
		return fmt.Errorf("%s phase: %w", PhaseRequirements, err)
	}
	report.Design = design

	settings.Features = doc.Features
	settings.Dependencies = design.Dependencies
	if err := p.store.SaveSettings(settings); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	if err := p.store.SaveRequirements(cfg.Name, doc); err != nil {
		return fmt.Errorf("persist requirements: %w", err)
	}

	p.logger.Info("requirements phase completed",
		"project", cfg.Name,
		"features", len(doc.Features),
		"components", len(design.Components),
	)
	return nil
}

// runImplementationPhase runs the backend and frontend developers over the
// design.
func (p *Pipeline) runImplementationPhase(ctx context.Context, report *RunReport) error {
	backend, err := p.exec.ImplementBackend(ctx, report.Design)
	if err != nil {
		return fmt.Errorf("%s phase: %w", PhaseImplementation, err)
	}
	report.Backend = backend

	frontend, err := p.exec.ImplementFrontend(ctx, report.Design)
	if err != nil {
		return fmt.Errorf("%s phase: %w", PhaseImplementation, err)
	}
	report.Frontend = frontend

	p.logger.Info("implementation phase completed",
		"project", report.Project,
		"backend_files", len(backend.Files),
		"frontend_files", len(frontend.Files),
	)
	return nil
}

// runDeliveryPhase plans deployment, writes documentation, and persists the
// README into the project directory.
func (p *Pipeline) runDeliveryPhase(ctx context.Context, cfg *project.Config, report *RunReport) error {
	deployment, err := p.exec.PlanDeployment(ctx, report.Design)
	if err != nil {
		return fmt.Errorf("%s phase: %w", PhaseDelivery, err)
	}
	report.Deployment = deployment

	docs, err := p.exec.WriteDocumentation(ctx, cfg.Name, cfg.Description, report.Requirements, report.Design)
	if err != nil {
		return fmt.Errorf("%s phase: %w", PhaseDelivery, err)
	}
	report.Documentation = docs

	if err := p.store.SaveArtifact(cfg.Name, "README.md", []byte(docs.README)); err != nil {
		return fmt.Errorf("persist README: %w", err)
	}

	p.logger.Info("delivery phase completed",
		"project", cfg.Name,
		"platform", deployment.Platform,
	)
	return nil
}
