// Package config provides permission descriptor loading and validation.
// Descriptors are YAML documents declaring which application privileges a
// principal holds and on which resource patterns.
package config

import (
	"fmt"

	"github.com/grantset-dev/grantset/internal/domain/permission"
	"github.com/grantset-dev/grantset/internal/domain/privilege"
)

// Descriptor represents a complete permission descriptor document.
type Descriptor struct {
	Metadata     DescriptorMetadata `yaml:"descriptor"`
	Applications []ApplicationGrant `yaml:"applications"`
}

// DescriptorMetadata contains metadata about the descriptor.
type DescriptorMetadata struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

// ApplicationGrant declares one privilege grant: a set of action patterns
// within an application namespace, applied to a set of resource patterns.
type ApplicationGrant struct {
	Application string   `yaml:"application"`
	Actions     []string `yaml:"actions,omitempty"`
	Resources   []string `yaml:"resources,omitempty"`
}

// Grants converts the descriptor into raw permission grants. Grants for the
// same privilege are left as-is; permission.NewSet merges them.
func (d *Descriptor) Grants() ([]permission.Grant, error) {
	grants := make([]permission.Grant, 0, len(d.Applications))
	for i, app := range d.Applications {
		p, err := privilege.New(app.Application, app.Actions...)
		if err != nil {
			return nil, fmt.Errorf("applications[%d]: %w", i, err)
		}
		grants = append(grants, permission.Grant{
			Privilege: p,
			Resources: app.Resources,
		})
	}
	return grants, nil
}
