// Package grants provides file-based persistence for permission grants.
package grants

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/grantset-dev/grantset/internal/domain/permission"
	"github.com/grantset-dev/grantset/internal/domain/privilege"
)

// FileStore persists a flat list of permission grants. It backs the
// "additional grants" file a decision point can layer on top of its
// descriptors.
type FileStore struct {
	path string
}

// NewFileStore creates a new FileStore.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
	}
}

// Path returns the path to the grants file.
func (s *FileStore) Path() string {
	return s.path
}

// grantsFile represents the YAML structure of the grants file.
type grantsFile struct {
	Grants []struct {
		Application string   `yaml:"application"`
		Actions     []string `yaml:"actions,omitempty"`
		Resources   []string `yaml:"resources,omitempty"`
	} `yaml:"grants"`
}

// Load loads permission grants from the grants file.
// If the file does not exist, it returns an empty list without error.
func (s *FileStore) Load() ([]permission.Grant, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grants file: %w", err)
	}

	var file grantsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse grants file: %w", err)
	}

	grants := make([]permission.Grant, 0, len(file.Grants))
	for i, g := range file.Grants {
		p, err := privilege.New(g.Application, g.Actions...)
		if err != nil {
			return nil, fmt.Errorf("grants[%d]: %w", i, err)
		}
		grants = append(grants, permission.Grant{
			Privilege: p,
			Resources: g.Resources,
		})
	}

	return grants, nil
}

// Save saves permission grants to the grants file.
func (s *FileStore) Save(grants []permission.Grant) error {
	dir := filepath.Dir(s.path)
	//nolint:gosec // G301: 0o755 is standard for user config directories
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create grants directory: %w", err)
	}

	var file grantsFile
	for _, g := range grants {
		file.Grants = append(file.Grants, struct {
			Application string   `yaml:"application"`
			Actions     []string `yaml:"actions,omitempty"`
			Resources   []string `yaml:"resources,omitempty"`
		}{
			Application: g.Privilege.Application(),
			Actions:     g.Privilege.Actions(),
			Resources:   g.Resources,
		})
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("failed to marshal grants: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write grants file: %w", err)
	}

	return nil
}
