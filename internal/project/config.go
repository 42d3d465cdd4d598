package project

// Config describes a project as entered by the user before any agent runs.
type Config struct {
	Name                  string            `json:"name" yaml:"name"`
	Description           string            `json:"description" yaml:"description"`
	Type                  string            `json:"type" yaml:"type"` // web, mobile, cli, desktop
	Features              []string          `json:"features,omitempty" yaml:"features,omitempty"`
	TechnicalRequirements map[string]string `json:"technical_requirements,omitempty" yaml:"technical_requirements,omitempty"`
	OutputDir             string            `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
}

// Valid reports whether the config carries the minimum fields the pipeline
// needs: a name and a description.
func (c *Config) Valid() bool {
	return c != nil && c.Name != "" && c.Description != ""
}
