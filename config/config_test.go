package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.IntervalMS = 1000
	cfg.Command = "sensors"
	cfg.Args = []string{"-A"}
	cfg.Fallback = false

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got := Load()
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if got, want := Load(), Default(); !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %+v, want defaults %+v", got, want)
	}
}

func TestLoadSanitizesBadValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	p := filepath.Join(dir, "sensory", "config.json")
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(`{"interval_ms": 0, "command": ""}`), 0600); err != nil {
		t.Fatal(err)
	}

	got := Load()
	if got.IntervalMS != Default().IntervalMS {
		t.Errorf("IntervalMS = %d, want default", got.IntervalMS)
	}
	if got.Command != Default().Command {
		t.Errorf("Command = %q, want default", got.Command)
	}
}
