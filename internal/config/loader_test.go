package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDescriptor = `
descriptor:
  name: analyst
  version: "1.2.0"
  description: Read access for analysts
applications:
  - application: myapp
    actions: ["data:read", "data:list/*"]
    resources: ["object/*"]
  - application: reporting
    resources: ["report/q?"]
`

func TestLoadDescriptorFromReader_Valid(t *testing.T) {
	d, err := LoadDescriptorFromReader(strings.NewReader(validDescriptor))
	require.NoError(t, err)

	assert.Equal(t, "analyst", d.Metadata.Name)
	assert.Equal(t, "1.2.0", d.Metadata.Version)
	require.Len(t, d.Applications, 2)
	assert.Equal(t, "myapp", d.Applications[0].Application)
	assert.Equal(t, []string{"data:read", "data:list/*"}, d.Applications[0].Actions)
	assert.Empty(t, d.Applications[1].Actions, "actions are optional")
}

func TestLoadDescriptorFromReader_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "unknown field rejected",
			yaml: `
descriptor:
  name: x
  version: "1.0.0"
applications:
  - application: myapp
    privileges: ["read"]
`,
			wantErr: "schema validation failed",
		},
		{
			name: "missing applications",
			yaml: `
descriptor:
  name: x
  version: "1.0.0"
`,
			wantErr: "schema validation failed",
		},
		{
			name: "non-string action",
			yaml: `
descriptor:
  name: x
  version: "1.0.0"
applications:
  - application: myapp
    actions: [42]
`,
			wantErr: "schema validation failed",
		},
		{
			name: "bad semver",
			yaml: `
descriptor:
  name: x
  version: "not-a-version"
applications:
  - application: myapp
`,
			wantErr: "not valid semver",
		},
		{
			name: "unsupported major version",
			yaml: `
descriptor:
  name: x
  version: "2.0.0"
applications:
  - application: myapp
`,
			wantErr: "not supported",
		},
		{
			name: "bad descriptor name",
			yaml: `
descriptor:
  name: "bad name!"
  version: "1.0.0"
applications:
  - application: myapp
`,
			wantErr: "invalid",
		},
		{
			name:    "not yaml",
			yaml:    `{{{`,
			wantErr: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDescriptorFromReader(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDescriptor_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analyst.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDescriptor), 0o600))

	d, err := LoadDescriptor(path)
	require.NoError(t, err)
	assert.Equal(t, "analyst", d.Metadata.Name)

	_, err = LoadDescriptor(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDescriptor_Grants(t *testing.T) {
	d, err := LoadDescriptorFromReader(strings.NewReader(validDescriptor))
	require.NoError(t, err)

	grants, err := d.Grants()
	require.NoError(t, err)
	require.Len(t, grants, 2)
	assert.Equal(t, "myapp", grants[0].Privilege.Application())
	assert.Equal(t, []string{"object/*"}, grants[0].Resources)
	assert.Empty(t, grants[1].Privilege.Actions())
}
