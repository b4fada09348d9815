package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ADITYAKUMARSINGH16/ai-judicial/models"
)

// SeedData carries the optional principals and cases preloaded at process
// start. Seeding is configuration, not core logic; the stores still enforce
// their own invariants when the data is loaded.
type SeedData struct {
	Principals []SeedPrincipal `yaml:"principals"`
	Cases      []models.Case   `yaml:"cases"`
}

// SeedPrincipal is one directory account in the seed file
type SeedPrincipal struct {
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Password string `yaml:"password"`
}

// LoadSeed reads a YAML seed file. A missing path returns empty seed data so
// the service can start with no preloaded records.
func LoadSeed(path string) (*SeedData, error) {
	if path == "" {
		return &SeedData{}, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var data SeedData
	if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &data, nil
}
