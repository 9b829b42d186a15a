package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/grantset-dev/grantset/internal/application/apperrors"
)

// SupportedFormatMajor is the descriptor format major version this build
// understands. Descriptors with a different major are rejected.
const SupportedFormatMajor = 1

// Descriptor name must be alphanumeric with dashes and underscores
var descriptorNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Validate performs structural validation of a descriptor.
// Returns an error describing all validation failures found.
func Validate(descriptor *Descriptor) error {
	var errors []string

	if err := validateMetadata(descriptor.Metadata); err != nil {
		errors = append(errors, err.Error())
	}

	if err := validateApplications(descriptor.Applications); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return apperrors.NewValidationError("descriptor", "invalid descriptor", errors...)
	}

	return nil
}

// validateMetadata validates descriptor metadata fields.
func validateMetadata(meta DescriptorMetadata) error {
	var errors []string

	if meta.Name == "" {
		errors = append(errors, "descriptor name is required")
	} else if !descriptorNamePattern.MatchString(meta.Name) {
		errors = append(errors, fmt.Sprintf("descriptor name %q is invalid (must be alphanumeric with dashes/underscores)", meta.Name))
	}

	if meta.Version == "" {
		errors = append(errors, "descriptor version is required")
	} else if v, err := semver.NewVersion(meta.Version); err != nil {
		errors = append(errors, fmt.Sprintf("descriptor version %q is not valid semver", meta.Version))
	} else if v.Major() != SupportedFormatMajor {
		errors = append(errors, fmt.Sprintf("descriptor version %q is not supported (expected major version %d)", meta.Version, SupportedFormatMajor))
	}

	if len(errors) > 0 {
		return fmt.Errorf("descriptor metadata: %s", strings.Join(errors, "; "))
	}

	return nil
}

// validateApplications validates the application grant entries.
func validateApplications(apps []ApplicationGrant) error {
	if len(apps) == 0 {
		return fmt.Errorf("at least one application grant is required")
	}

	var errors []string
	for i, app := range apps {
		if strings.TrimSpace(app.Application) == "" {
			errors = append(errors, fmt.Sprintf("applications[%d]: application name is required", i))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("applications validation:\n    - %s", strings.Join(errors, "\n    - "))
	}

	return nil
}

// ValidateSchema validates raw descriptor YAML against the embedded JSON
// Schema. This catches type-level mistakes (wrong shapes, non-string
// patterns) before strict decoding.
func ValidateSchema(data []byte) error {
	var document any
	if err := yaml.Unmarshal(data, &document); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource("descriptor.json", bytes.NewReader([]byte(descriptorSchema))); err != nil {
		return fmt.Errorf("failed to add descriptor schema resource: %w", err)
	}

	schema, err := compiler.Compile("descriptor.json")
	if err != nil {
		return fmt.Errorf("failed to compile descriptor schema: %w", err)
	}

	if err := schema.Validate(document); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return fmt.Errorf("descriptor schema validation failed: %s", formatSchemaError(validationErr))
		}
		return fmt.Errorf("descriptor schema validation failed: %w", err)
	}

	return nil
}

// formatSchemaError flattens a jsonschema validation error into one line
// per leaf cause.
func formatSchemaError(err *jsonschema.ValidationError) string {
	leaves := err.BasicOutput().Errors
	var msgs []string
	for _, l := range leaves {
		if l.Error == "" {
			continue
		}
		loc := l.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", loc, l.Error))
	}
	if len(msgs) == 0 {
		data, _ := json.Marshal(err.Message)
		return string(data)
	}
	return strings.Join(msgs, "; ")
}
