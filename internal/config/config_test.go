package config

import (
	"os"
	"path/filepath"
	"testing"
)

var keys = []string{KeyWidth, KeyHeight, KeyScale, KeyTitle, KeySeed, KeyMute, KeyDebug}

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func missingFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	c, err := Load(missingFile(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{Width: 800, Height: 600, Scale: 1, Title: "Cast & Catch"}
	if c != want {
		t.Fatalf("Load() = %+v, want %+v", c, want)
	}
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyWidth, "1024")
	t.Setenv(KeyMute, "true")

	c, err := Load(missingFile(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Width != 1024 || !c.Mute {
		t.Fatalf("Load() = %+v", c)
	}
	if c.Height != 600 {
		t.Fatalf("height = %d, want default 600", c.Height)
	}
}

func TestFileThenEnvironment(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "game.env")
	data := "FISHING_HEIGHT=700\nFISHING_SEED=42\nFISHING_DEBUG=true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(KeySeed, "7")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Height != 700 || !c.Debug {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.Seed != 7 {
		t.Fatalf("seed = %d, environment should win over the file", c.Seed)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{KeyWidth, "wide"},
		{KeyHeight, "-5"},
		{KeyScale, "0"},
		{KeySeed, "1.5"},
		{KeyMute, "maybe"},
		{KeyDebug, "2"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(missingFile(t)); err == nil {
				t.Fatalf("%s=%q: expected an error", tt.key, tt.value)
			}
		})
	}
}
