package agents

// Role names. These double as the config keys under agents.* in settings.
const (
	RoleProductManager    = "product_manager"
	RoleSystemArchitect   = "system_architect"
	RoleBackendDeveloper  = "backend_developer"
	RoleFrontendDeveloper = "frontend_developer"
	RoleDevOpsEngineer    = "devops_engineer"
	RoleTechnicalWriter   = "technical_writer"
)

// Agent is the common surface of every pipeline role. Each role exposes its
// own typed operations on top of this; the pipeline wires them together.
type Agent interface {
	Name() string
	Instructions() string
}
