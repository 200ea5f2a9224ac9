package camera

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("DefaultConfig().Validate() = %v, want no errors", errs)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"negative device", func(c *Config) { c.Device = -1 }, true},
		{"width too small", func(c *Config) { c.Width = 100 }, true},
		{"width too large", func(c *Config) { c.Width = 8000 }, true},
		{"height too small", func(c *Config) { c.Height = 50 }, true},
		{"framerate too high", func(c *Config) { c.Framerate = 240 }, true},
		{"framerate zero is driver default", func(c *Config) { c.Framerate = 0 }, false},
		{"quality zero", func(c *Config) { c.Quality = 0 }, true},
		{"quality over 100", func(c *Config) { c.Quality = 101 }, true},
		{"1080p", func(c *Config) { *c = HD1080Config() }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			errs := cfg.Validate()
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	for _, name := range PresetNames() {
		preset := GetPreset(name)
		if preset == nil {
			t.Fatalf("GetPreset(%q) = nil", name)
		}
		if errs := preset.Validate(); len(errs) > 0 {
			t.Errorf("preset %q invalid: %v", name, errs)
		}
	}

	if GetPreset("8k") != nil {
		t.Error("GetPreset(\"8k\") should be nil")
	}
}
