package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mamora/signalbot/internal/analyze"
)

// LoadPolicy returns the compiled-in scoring policy, overlaid with the YAML
// file at path when one exists. A missing file is not an error; a malformed
// one is.
func LoadPolicy(path string) (analyze.Policy, error) {
	policy := analyze.DefaultPolicy()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return policy, nil
		}
		return policy, fmt.Errorf("read policy file: %w", err)
	}
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return policy, fmt.Errorf("parse policy file: %w", err)
	}
	return policy, nil
}
