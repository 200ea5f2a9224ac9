package config

import "testing"

func TestGetenv(t *testing.T) {
	t.Setenv("FRAMEGRAB_TEST_KEY", "value")
	if got := Getenv("FRAMEGRAB_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("Getenv() = %q, want %q", got, "value")
	}
	if got := Getenv("FRAMEGRAB_UNSET_KEY", "fallback"); got != "fallback" {
		t.Errorf("Getenv() = %q, want fallback", got)
	}
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   int
		want  int
	}{
		{"valid", "3", 0, 3},
		{"empty uses default", "", 7, 7},
		{"garbage uses default", "two", 7, 7},
		{"negative", "-1", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("FRAMEGRAB_TEST_INT", tt.value)
			}
			if got := GetenvInt("FRAMEGRAB_TEST_INT", tt.def); got != tt.want {
				t.Errorf("GetenvInt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	if OutputDir() != DefaultOutputDir {
		t.Errorf("OutputDir() = %q, want %q", OutputDir(), DefaultOutputDir)
	}
	if Device() != DefaultDevice {
		t.Errorf("Device() = %d, want %d", Device(), DefaultDevice)
	}
	t.Setenv("FRAMEGRAB_OUTPUT_DIR", "captures")
	if OutputDir() != "captures" {
		t.Errorf("OutputDir() = %q, want captures", OutputDir())
	}
}
