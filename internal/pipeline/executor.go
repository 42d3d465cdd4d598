package pipeline

import (
	"context"

	"forge/internal/agents"
	"forge/internal/core"
	"forge/internal/llm"
	"forge/internal/project"
	"forge/pkg/requirements"
)

// Executor is the surface the pipeline drives. Each method maps to one role's
// contribution; swapping in a MockExecutor keeps pipeline tests offline.
type Executor interface {
	GatherRequirements(ctx context.Context, cfg *project.Config) (*requirements.Document, error)
	AnalyzeRequirements(doc *requirements.Document) requirements.Analysis
	DesignArchitecture(ctx context.Context, name, projectType string, doc *requirements.Document) (*agents.ArchitectureDesign, error)
	ImplementBackend(ctx context.Context, design *agents.ArchitectureDesign) (*agents.ImplementationResult, error)
	ImplementFrontend(ctx context.Context, design *agents.ArchitectureDesign) (*agents.ImplementationResult, error)
	PlanDeployment(ctx context.Context, design *agents.ArchitectureDesign) (*agents.DeploymentPlan, error)
	WriteDocumentation(ctx context.Context, name, description string, doc *requirements.Document, design *agents.ArchitectureDesign) (*agents.Documentation, error)
}

// AgentExecutor backs the Executor with the real agent roles.
type AgentExecutor struct {
	productManager *agents.ProductManager
	architect      *agents.SystemArchitect
	backend        *agents.BackendDeveloper
	frontend       *agents.FrontendDeveloper
	devops         *agents.DevOpsEngineer
	writer         *agents.TechnicalWriter
}

// NewAgentExecutor wires the six roles with their per-role settings. A nil
// client leaves every role in offline template mode.
func NewAgentExecutor(client *llm.Client, settings *core.Settings, logger core.Logger) *AgentExecutor {
	return &AgentExecutor{
		productManager: agents.NewProductManager(client, settings.Agents.ProductManager, logger),
		architect:      agents.NewSystemArchitect(client, settings.Agents.SystemArchitect, logger),
		backend:        agents.NewBackendDeveloper(logger),
		frontend:       agents.NewFrontendDeveloper(logger),
		devops:         agents.NewDevOpsEngineer(logger),
		writer:         agents.NewTechnicalWriter(logger),
	}
}

func (e *AgentExecutor) GatherRequirements(ctx context.Context, cfg *project.Config) (*requirements.Document, error) {
	return e.productManager.GatherRequirements(ctx, cfg)
}

func (e *AgentExecutor) AnalyzeRequirements(doc *requirements.Document) requirements.Analysis {
	return e.productManager.AnalyzeRequirements(doc)
}

func (e *AgentExecutor) DesignArchitecture(ctx context.Context, name, projectType string, doc *requirements.Document) (*agents.ArchitectureDesign, error) {
	return e.architect.DesignArchitecture(ctx, name, projectType, doc)
}

func (e *AgentExecutor) ImplementBackend(ctx context.Context, design *agents.ArchitectureDesign) (*agents.ImplementationResult, error) {
	return e.backend.Implement(ctx, design)
}

func (e *AgentExecutor) ImplementFrontend(ctx context.Context, design *agents.ArchitectureDesign) (*agents.ImplementationResult, error) {
	return e.frontend.Implement(ctx, design)
}

func (e *AgentExecutor) PlanDeployment(ctx context.Context, design *agents.ArchitectureDesign) (*agents.DeploymentPlan, error) {
	return e.devops.PlanDeployment(ctx, design)
}

func (e *AgentExecutor) WriteDocumentation(ctx context.Context, name, description string, doc *requirements.Document, design *agents.ArchitectureDesign) (*agents.Documentation, error) {
	return e.writer.WriteDocumentation(ctx, name, description, doc, design)
}

// MockExecutor returns canned outputs and records call counts. Set an entry
// in Errors to make the corresponding call fail.
type MockExecutor struct {
	Requirements  *requirements.Document
	Design        *agents.ArchitectureDesign
	Backend       *agents.ImplementationResult
	Frontend      *agents.ImplementationResult
	Deployment    *agents.DeploymentPlan
	Documentation *agents.Documentation

	Errors map[string]error
	Calls  map[string]int
}

// NewMockExecutor creates a mock with a minimal valid set of outputs.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Requirements: &requirements.Document{
			Features:    []string{"User authentication"},
			UserStories: []string{"As a user, I want to log in, so that I can access my account"},
			AcceptanceCriteria: map[string][]string{
				"User authentication": {"login works"},
			},
			Criteria: &requirements.Criteria{
				Impact: map[string]float64{"User authentication": 8},
				Effort: map[string]float64{"User authentication": 5},
			},
		},
		Design: &agents.ArchitectureDesign{
			Components:   []string{"api", "storage"},
			Stack:        map[string]string{"backend": "Go"},
			Dependencies: map[string]string{"gopkg.in/yaml.v3": "v3.0.1"},
		},
		Backend:    &agents.ImplementationResult{Role: agents.RoleBackendDeveloper, Files: []string{"cmd/server/main.go"}},
		Frontend:   &agents.ImplementationResult{Role: agents.RoleFrontendDeveloper, Files: []string{}},
		Deployment: &agents.DeploymentPlan{Platform: "docker", Files: []string{"Dockerfile"}},
		Documentation: &agents.Documentation{
			README:   "# mock\n",
			Sections: []string{},
		},
		Errors: map[string]error{},
		Calls:  map[string]int{},
	}
}

func (m *MockExecutor) record(op string) error {
	m.Calls[op]++
	return m.Errors[op]
}

func (m *MockExecutor) GatherRequirements(ctx context.Context, cfg *project.Config) (*requirements.Document, error) {
	if err := m.record("gather_requirements"); err != nil {
		return nil, err
	}
	return m.Requirements, nil
}

func (m *MockExecutor) AnalyzeRequirements(doc *requirements.Document) requirements.Analysis {
	m.Calls["analyze_requirements"]++
	return requirements.Analyze(doc)
}

func (m *MockExecutor) DesignArchitecture(ctx context.Context, name, projectType string, doc *requirements.Document) (*agents.ArchitectureDesign, error) {
	if err := m.record("design_architecture"); err != nil {
		return nil, err
	}
	return m.Design, nil
}

func (m *MockExecutor) ImplementBackend(ctx context.Context, design *agents.ArchitectureDesign) (*agents.ImplementationResult, error) {
	if err := m.record("implement_backend"); err != nil {
		return nil, err
	}
	return m.Backend, nil
}

func (m *MockExecutor) ImplementFrontend(ctx context.Context, design *agents.ArchitectureDesign) (*agents.ImplementationResult, error) {
	if err := m.record("implement_frontend"); err != nil {
		return nil, err
	}
	return m.Frontend, nil
}

func (m *MockExecutor) PlanDeployment(ctx context.Context, design *agents.ArchitectureDesign) (*agents.DeploymentPlan, error) {
	if err := m.record("plan_deployment"); err != nil {
		return nil, err
	}
	return m.Deployment, nil
}

func (m *MockExecutor) WriteDocumentation(ctx context.Context, name, description string, doc *requirements.Document, design *agents.ArchitectureDesign) (*agents.Documentation, error) {
	if err := m.record("write_documentation"); err != nil {
		return nil, err
	}
	return m.Documentation, nil
}
