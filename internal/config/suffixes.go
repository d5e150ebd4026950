package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSuffixSet is the suffix set used when SUFFIX_SET is not provided.
const DefaultSuffixSet = "default"

// builtinSuffixSets are always available, YAML sets may add to or override them.
var builtinSuffixSets = map[string][]string{
	DefaultSuffixSet: {".com", ".in", ".net", ".co.in", ".org"},
	"in":             {".in"},
}

// YAMLConfig represents the structure of the config.yaml file.
type YAMLConfig struct {
	SuffixSets map[string][]string `yaml:"suffix_sets"`
}

// LoadYAMLConfig loads the YAML configuration file at path.
// Returns nil without error if the file doesn't exist.
func LoadYAMLConfig(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Suffixes resolves the named suffix set, preferring sets from the YAML file.
// Every suffix is normalised to a lowercase, dot-prefixed form.
func (c *YAMLConfig) Suffixes(name string) ([]string, error) {
	var raw []string
	if c != nil {
		raw = c.SuffixSets[name]
	}
	if len(raw) == 0 {
		raw = builtinSuffixSets[name]
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("unknown suffix set %q", name)
	}

	suffixes := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || s == "." {
			return nil, fmt.Errorf("suffix set %q contains an empty suffix", name)
		}
		if !strings.HasPrefix(s, ".") {
			s = "." + s
		}
		suffixes = append(suffixes, s)
	}
	return suffixes, nil
}
