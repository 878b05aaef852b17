// Package config loads and validates YAML request suites for the run
// command.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Suite is an ordered list of requests executed by the run command.
type Suite struct {
	Name     string    `yaml:"name"`
	Requests []Request `yaml:"requests"`
}

// Request is one request entry in a suite.
type Request struct {
	Name    string            `yaml:"name"`
	Method  string            `yaml:"method"`
	URL     string            `yaml:"url"`
	Headers map[string]string `yaml:"headers,omitempty"`
	Body    string            `yaml:"body,omitempty"`
	// Timeout in seconds; 0 means the default of 30.
	Timeout int `yaml:"timeout,omitempty"`
	// Schema is a path to a JSON Schema file the response body must satisfy.
	Schema string `yaml:"schema,omitempty"`
}

// Load reads and parses a suite file, then validates it.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite file: %w", err)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing suite file: %w", err)
	}

	if errs := Validate(&suite); len(errs) > 0 {
		return nil, fmt.Errorf("invalid suite: %s", errs[0].Error())
	}

	return &suite, nil
}
