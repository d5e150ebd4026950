package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_ADDR", "RETENTION_DAYS", "WHOIS_TIMEOUT", "SUFFIX_SET", "WHOIS_PROVIDER"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ServerAddr != ":3000" {
		t.Errorf("ServerAddr = %q, want %q", cfg.ServerAddr, ":3000")
	}
	if cfg.RetentionDays != 7 {
		t.Errorf("RetentionDays = %d, want 7", cfg.RetentionDays)
	}
	if cfg.WhoisTimeout != 10*time.Second {
		t.Errorf("WhoisTimeout = %v, want 10s", cfg.WhoisTimeout)
	}
	if cfg.SuffixSet != DefaultSuffixSet {
		t.Errorf("SuffixSet = %q, want %q", cfg.SuffixSet, DefaultSuffixSet)
	}
	if cfg.WhoisProvider != "xmlapi" {
		t.Errorf("WhoisProvider = %q, want xmlapi", cfg.WhoisProvider)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RETENTION_DAYS", "3")
	t.Setenv("WHOIS_TIMEOUT", "2s")
	t.Setenv("EVICTION_INTERVAL", "0s")
	t.Setenv("RATE_LIMIT_MAX", "not-a-number")

	cfg := Load()

	if cfg.RetentionDays != 3 {
		t.Errorf("RetentionDays = %d, want 3", cfg.RetentionDays)
	}
	if cfg.WhoisTimeout != 2*time.Second {
		t.Errorf("WhoisTimeout = %v, want 2s", cfg.WhoisTimeout)
	}
	if cfg.EvictionInterval != 0 {
		t.Errorf("EvictionInterval = %v, want 0", cfg.EvictionInterval)
	}
	if cfg.RateLimitMax != 60 {
		t.Errorf("RateLimitMax = %d, want fallback 60", cfg.RateLimitMax)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ServerAddr:    ":3000",
			DatabaseURL:   "postgres://localhost:5432/domainsearch",
			WhoisProvider: "xmlapi",
			WhoisAPIURL:   "http://www.whoisxmlapi.com",
			WhoisTimeout:  10 * time.Second,
			SuffixSet:     DefaultSuffixSet,
			RetentionDays: 7,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"raw provider", func(c *Config) { c.WhoisProvider = "raw" }, false},
		{"redis url", func(c *Config) { c.RedisURL = "redis://localhost:6379/0" }, false},
		{"unknown provider", func(c *Config) { c.WhoisProvider = "dns" }, true},
		{"zero retention", func(c *Config) { c.RetentionDays = 0 }, true},
		{"zero timeout", func(c *Config) { c.WhoisTimeout = 0 }, true},
		{"negative rate limit", func(c *Config) { c.RateLimitMax = -1 }, true},
		{"missing database", func(c *Config) { c.DatabaseURL = "" }, true},
		{"bad api url", func(c *Config) { c.WhoisAPIURL = "not a url" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadedDefaultsAreValid(t *testing.T) {
	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults error = %v", err)
	}
}

func TestIsDev(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"development", true},
		{"dev", true},
		{"production", false},
		{"", false},
	}
	for _, tt := range tests {
		cfg := &Config{Env: tt.env}
		if got := cfg.IsDev(); got != tt.want {
			t.Errorf("IsDev() with Env=%q = %v, want %v", tt.env, got, tt.want)
		}
	}
}

func TestSuffixes(t *testing.T) {
	yamlCfg := &YAMLConfig{SuffixSets: map[string][]string{
		"custom": {"IO", ".dev ", "co.uk"},
		"broken": {"com", ""},
	}}

	tests := []struct {
		name    string
		cfg     *YAMLConfig
		set     string
		want    []string
		wantErr bool
	}{
		{"builtin default with nil config", nil, DefaultSuffixSet, []string{".com", ".in", ".net", ".co.in", ".org"}, false},
		{"builtin single suffix", nil, "in", []string{".in"}, false},
		{"yaml set normalised", yamlCfg, "custom", []string{".io", ".dev", ".co.uk"}, false},
		{"yaml falls back to builtin", yamlCfg, "in", []string{".in"}, false},
		{"unknown set", yamlCfg, "missing", nil, true},
		{"empty suffix rejected", yamlCfg, "broken", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.Suffixes(tt.set)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Suffixes(%q) error = %v, wantErr %v", tt.set, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Suffixes(%q) = %v, want %v", tt.set, got, tt.want)
			}
		})
	}
}

func TestLoadYAMLConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadYAMLConfig(filepath.Join(dir, "missing.yaml"))
	if err != nil || cfg != nil {
		t.Fatalf("LoadYAMLConfig(missing) = %v, %v; want nil, nil", cfg, err)
	}

	path := filepath.Join(dir, "config.yaml")
	content := "suffix_sets:\n  asia:\n    - .in\n    - .jp\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadYAMLConfig(path)
	if err != nil {
		t.Fatalf("LoadYAMLConfig() error = %v", err)
	}
	got, err := cfg.Suffixes("asia")
	if err != nil {
		t.Fatalf("Suffixes(asia) error = %v", err)
	}
	if want := []string{".in", ".jp"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Suffixes(asia) = %v, want %v", got, want)
	}

	if err := os.WriteFile(path, []byte("suffix_sets: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadYAMLConfig(path); err == nil {
		t.Error("LoadYAMLConfig() with invalid YAML should fail")
	}
}
