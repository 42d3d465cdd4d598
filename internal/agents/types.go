package agents

// ArchitectureDesign is the system architect's output: named components,
// a technology per layer, and pinned package dependencies.
type ArchitectureDesign struct {
	Components   []string          `json:"components" yaml:"components"`
	Stack        map[string]string `json:"stack" yaml:"stack"`
	Dependencies map[string]string `json:"dependencies" yaml:"dependencies"`
}

// ImplementationResult describes what a developer role produced.
type ImplementationResult struct {
	Role  string   `json:"role" yaml:"role"`
	Files []string `json:"files" yaml:"files"`
	Notes []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// DeploymentPlan is the DevOps engineer's output.
type DeploymentPlan struct {
	Platform string   `json:"platform" yaml:"platform"`
	Steps    []string `json:"steps" yaml:"steps"`
	Files    []string `json:"files" yaml:"files"`
}

// Documentation is the technical writer's output. README holds the full
// rendered document; Sections lists the headings it contains.
type Documentation struct {
	README   string   `json:"readme" yaml:"readme"`
	Sections []string `json:"sections" yaml:"sections"`
}
