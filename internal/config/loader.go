package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDescriptor loads and parses a permission descriptor from a YAML file.
// The descriptor is schema-validated and structurally validated before it
// is returned.
func LoadDescriptor(path string) (*Descriptor, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	// resolving symlinks or escaping the intended directory.
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open descriptor directory: %w", err)
	}
	defer root.Close()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open descriptor: %w", err)
	}
	defer file.Close()

	return LoadDescriptorFromReader(file)
}

// LoadDescriptorFromReader loads and parses a descriptor from an io.Reader.
// This is useful for testing with in-memory YAML data.
func LoadDescriptorFromReader(r io.Reader) (*Descriptor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}

	if err := ValidateSchema(data); err != nil {
		return nil, err
	}

	var descriptor Descriptor
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Strict parsing - reject unknown fields

	if err := decoder.Decode(&descriptor); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := Validate(&descriptor); err != nil {
		return nil, err
	}

	return &descriptor, nil
}
