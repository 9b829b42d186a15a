package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/grantset-dev/grantset/internal/application/services"
	"github.com/grantset-dev/grantset/internal/domain/values"
)

// createTestReport creates a sample decision report for testing.
func createTestReport() *Report {
	return NewReport("analyst.yaml", []services.Decision{
		{
			ID:          values.NewDecisionID(),
			Application: "myapp",
			Actions:     []string{"data:read"},
			Resource:    "object/1",
			Granted:     true,
		},
		{
			ID:          values.NewDecisionID(),
			Application: "myapp",
			Actions:     []string{"data:write"},
			Resource:    "object/1",
			Granted:     false,
		},
	})
}

func TestNewReport_Summary(t *testing.T) {
	report := createTestReport()

	assert.Equal(t, 2, report.Summary.Total)
	assert.Equal(t, 1, report.Summary.Granted)
	assert.Equal(t, 1, report.Summary.Denied)
	assert.False(t, report.CheckedAt.IsZero())
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, true).Format(createTestReport()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "analyst.yaml", decoded["descriptor"])

	decisions := decoded["decisions"].([]any)
	require.Len(t, decisions, 2)
	first := decisions[0].(map[string]any)
	assert.Equal(t, true, first["granted"])
	assert.NotEmpty(t, first["id"])
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter(&buf).Format(createTestReport()))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "analyst.yaml", decoded["descriptor"])

	summary := decoded["summary"].(map[string]any)
	assert.Equal(t, 2, summary["total"])
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).Format(createTestReport()))

	out := buf.String()
	assert.Contains(t, out, "Descriptor: analyst.yaml")
	assert.Contains(t, out, "✓ GRANT myapp on object/1")
	assert.Contains(t, out, "✗ DENY  myapp on object/1")
	assert.Contains(t, out, "Actions: data:read")
	assert.Contains(t, out, "Summary: 2 checked, 1 granted, 1 denied")
}

func TestTableFormatter_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).Format(NewReport("empty.yaml", nil)))

	assert.Contains(t, buf.String(), "No checks evaluated.")
}
