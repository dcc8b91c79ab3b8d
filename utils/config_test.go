package utils

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero size", func(c *Config) { c.Size = 0 }},
		{"negative size", func(c *Config) { c.Size = -10 }},
		{"unknown policy", func(c *Config) { c.SeedPolicy = "checkerboard" }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
	}

	for _, c := range cases {
		cfg := DefaultConfig()
		c.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig("does-not-exist.json")
	if err == nil {
		t.Fatal("missing file should surface an error")
	}
	// Caller still gets usable defaults alongside the error
	if verr := cfg.Validate(); verr != nil {
		t.Fatalf("fallback config should validate: %v", verr)
	}
}
