package project

import "time"

// Settings is the per-project record persisted as forge.yaml in the
// project's output directory.
type Settings struct {
	ID           string            `json:"id" yaml:"id"`
	Name         string            `json:"name" yaml:"name"`
	Description  string            `json:"description" yaml:"description"`
	Type         string            `json:"type" yaml:"type"`
	OutputDir    string            `json:"output_dir" yaml:"output_dir"`
	Template     string            `json:"template,omitempty" yaml:"template,omitempty"`
	Features     []string          `json:"features" yaml:"features"`
	Dependencies map[string]string `json:"dependencies" yaml:"dependencies"`
	CreatedAt    time.Time         `json:"created_at" yaml:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" yaml:"updated_at"`
}

// NewSettings builds the initial settings record for a project config.
func NewSettings(cfg *Config, outputDir string) (*Settings, error) {
	id, err := NewProjectID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Settings{
		ID:           id,
		Name:         cfg.Name,
		Description:  cfg.Description,
		Type:         cfg.Type,
		OutputDir:    outputDir,
		Features:     []string{},
		Dependencies: map[string]string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
