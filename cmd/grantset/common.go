package main

import (
	"fmt"
	"io"
	"os"

	"github.com/grantset-dev/grantset/internal/application/apperrors"
	"github.com/grantset-dev/grantset/internal/application/services"
	"github.com/grantset-dev/grantset/internal/config"
	"github.com/grantset-dev/grantset/internal/infrastructure/grants"
	"github.com/grantset-dev/grantset/internal/output"
)

// loadAuthorizer builds an authorizer from a descriptor file, layering in
// an optional extra grants file.
func loadAuthorizer(descriptorPath, grantsPath string) (*services.Authorizer, error) {
	descriptor, err := config.LoadDescriptor(descriptorPath)
	if err != nil {
		return nil, apperrors.NewConfigurationError("descriptor", "failed to load "+descriptorPath, err)
	}

	allGrants, err := descriptor.Grants()
	if err != nil {
		return nil, apperrors.NewConfigurationError("descriptor", "failed to build grants", err)
	}

	if grantsPath != "" {
		extra, err := grants.NewFileStore(grantsPath).Load()
		if err != nil {
			return nil, apperrors.NewConfigurationError("grants", "failed to load "+grantsPath, err)
		}
		allGrants = append(allGrants, extra...)
	}

	return services.NewAuthorizerFromGrants(allGrants), nil
}

// newFormatter selects the output formatter for the given format name.
func newFormatter(format string, w io.Writer) (output.Formatter, error) {
	switch format {
	case "table":
		return output.NewTableFormatter(w), nil
	case "json":
		return output.NewJSONFormatter(w, true), nil
	case "yaml":
		return output.NewYAMLFormatter(w), nil
	default:
		return nil, fmt.Errorf("invalid format: %s (valid: table, json, yaml)", format)
	}
}

// openOutput opens the output destination, defaulting to stdout.
// The caller owns the returned closer.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}
