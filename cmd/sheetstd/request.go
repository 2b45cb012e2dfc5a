package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
)

// loadRequest reads a process request from a YAML or JSON file.
//
// The file is either a full request:
//
//	mapping:
//	  Question Text: Question
//	split_column: Topic
//	custom_values:
//	  Author: QA Team
//
// or a bare field-to-column mapping.
func loadRequest(path string) (models.ProcessRequest, error) {
	var req models.ProcessRequest

	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("read mapping file: %w", err)
	}

	var top map[string]interface{}
	if err := yaml.Unmarshal(data, &top); err != nil {
		return req, fmt.Errorf("parse mapping file %s: %w", path, err)
	}
	if isFullRequest(top) {
		if err := yaml.Unmarshal(data, &req); err != nil {
			return req, fmt.Errorf("parse mapping file %s: %w", path, err)
		}
		return req, nil
	}

	var mapping models.MappingConfig
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return req, fmt.Errorf("parse mapping file %s: %w", path, err)
	}
	req.Mapping = mapping
	return req, nil
}

func isFullRequest(doc map[string]interface{}) bool {
	for _, key := range []string{"mapping", "split_column", "custom_values", "sheet"} {
		if _, ok := doc[key]; ok {
			return true
		}
	}
	return false
}

// parseAssignments turns Field=Value pairs into a map. The value may be empty.
func parseAssignments(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		field, value, ok := strings.Cut(p, "=")
		field = strings.TrimSpace(field)
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid assignment %q, want Field=Value", p)
		}
		out[field] = value
	}
	return out, nil
}
