package project

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"forge/pkg/requirements"
)

const (
	settingsFile     = "forge.yaml"
	requirementsFile = "requirements.yaml"
)

// Store persists project settings and requirements documents under the
// projects root, one directory per project.
type Store struct {
	root string
}

// NewStore creates a store rooted at the given projects directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the projects root directory.
func (s *Store) Root() string {
	return s.root
}

// Dir returns the directory for a named project.
func (s *Store) Dir(name string) string {
	return filepath.Join(s.root, name)
}

// Exists reports whether a project directory already exists.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Dir(name))
	return err == nil
}

// SaveSettings writes the project settings to forge.yaml.
func (s *Store) SaveSettings(settings *Settings) error {
	settings.UpdatedAt = time.Now()

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	dir := s.Dir(settings.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create project directory: %w", err)
	}

	return writeFileAtomic(filepath.Join(dir, settingsFile), data)
}

// LoadSettings reads forge.yaml for a named project.
func (s *Store) LoadSettings(name string) (*Settings, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir(name), settingsFile))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}

	return &settings, nil
}

// SaveRequirements writes the requirements document for a project.
func (s *Store) SaveRequirements(name string, doc *requirements.Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal requirements: %w", err)
	}

	dir := s.Dir(name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create project directory: %w", err)
	}

	return writeFileAtomic(filepath.Join(dir, requirementsFile), data)
}

// LoadRequirements reads the requirements document for a project.
func (s *Store) LoadRequirements(name string) (*requirements.Document, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir(name), requirementsFile))
	if err != nil {
		return nil, fmt.Errorf("read requirements: %w", err)
	}

	var doc requirements.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse requirements: %w", err)
	}

	return &doc, nil
}

// SaveArtifact writes a generated file (README.md and friends) into the
// project directory.
func (s *Store) SaveArtifact(name, filename string, data []byte) error {
	dir := s.Dir(name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create project directory: %w", err)
	}
	return writeFileAtomic(filepath.Join(dir, filename), data)
}

// LockPath returns the lock file path guarding a named project. The lock
// lives beside the project directory so it exists before the first save.
func (s *Store) LockPath(name string) (string, error) {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return "", fmt.Errorf("create projects root: %w", err)
	}
	return filepath.Join(s.root, name+".lock"), nil
}

// List loads the settings of every project under the root. Directories
// without a readable forge.yaml are skipped, not fatal.
func (s *Store) List() ([]*Settings, []error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Settings{}, nil
		}
		return nil, []error{fmt.Errorf("read projects root: %w", err)}
	}

	projects := []*Settings{}
	var warnings []error

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		settings, err := s.LoadSettings(entry.Name())
		if err != nil {
			warnings = append(warnings, fmt.Errorf("project %s: %w", entry.Name(), err))
			continue
		}
		projects = append(projects, settings)
	}

	return projects, warnings
}

// writeFileAtomic writes data to a temporary file and renames it into place
// so readers never observe a partial file.
func writeFileAtomic(path string, data []byte) error {
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath) // Best effort cleanup, ignore error
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
