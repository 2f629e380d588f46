package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"springbox/internal/physics"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
	if cfg.Params() != physics.DefaultParams() {
		t.Errorf("Expected default params %+v, got %+v", physics.DefaultParams(), cfg.Params())
	}
	if cfg.CutPolicy() != physics.CutSweep {
		t.Errorf("Expected sweep policy, got %v", cfg.CutPolicy())
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if cfg.Physics.Gravity != 0.7 {
		t.Errorf("Expected default gravity, got %v", cfg.Physics.Gravity)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[physics]\ngravity = 0.2\ncut_policy = \"nearest\"\n\n[server]\naddr = \":9000\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.2 {
		t.Errorf("Expected gravity 0.2, got %v", cfg.Physics.Gravity)
	}
	if cfg.Physics.SpringConstant != 0.05 {
		t.Errorf("Expected untouched spring constant 0.05, got %v", cfg.Physics.SpringConstant)
	}
	if cfg.CutPolicy() != physics.CutNearest {
		t.Errorf("Expected nearest policy, got %v", cfg.CutPolicy())
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Expected addr :9000, got %q", cfg.Server.Addr)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[physics\ngravity = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Physics.Damping = 0.5
	cfg.Window.Title = "test"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Physics.Damping != 0.5 || got.Window.Title != "test" {
		t.Errorf("Expected saved values back, got damping %v title %q", got.Physics.Damping, got.Window.Title)
	}
}

func TestPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	want := filepath.Join(dir, "springbox", "config.toml")
	if Path() != want {
		t.Errorf("Expected %s, got %s", want, Path())
	}
}

func TestValidateRejects(t *testing.T) {
	cfg := Default()
	cfg.Physics.Gravity = math.NaN()
	if err := cfg.Validate(); !errors.Is(err, physics.ErrNonFinite) {
		t.Errorf("Expected ErrNonFinite, got %v", err)
	}

	cfg = Default()
	cfg.Physics.CutPolicy = "shred"
	if err := cfg.Validate(); !errors.Is(err, physics.ErrUnknownPolicy) {
		t.Errorf("Expected ErrUnknownPolicy, got %v", err)
	}

	cfg = Default()
	cfg.Server.BroadcastHz = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for zero broadcast rate")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvGravity, "1.5")
	t.Setenv(EnvCutPolicy, "nearest")
	t.Setenv(EnvAddr, "127.0.0.1:7000")
	t.Setenv(EnvNoAudio, "true")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if cfg.Physics.Gravity != 1.5 {
		t.Errorf("Expected gravity 1.5, got %v", cfg.Physics.Gravity)
	}
	if cfg.CutPolicy() != physics.CutNearest {
		t.Errorf("Expected nearest, got %v", cfg.CutPolicy())
	}
	if cfg.Server.Addr != "127.0.0.1:7000" {
		t.Errorf("Expected env addr, got %q", cfg.Server.Addr)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
}

func TestApplyEnvMalformed(t *testing.T) {
	t.Setenv(EnvSpringK, "stiff")
	if err := Default().ApplyEnv(); err == nil {
		t.Error("Expected error for malformed float")
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(EnvDamping+"=0.25\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override existing variables, so start unset.
	t.Setenv(EnvDamping, "")
	os.Unsetenv(EnvDamping)

	if err := LoadEnv(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	defer os.Unsetenv(EnvDamping)

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatal(err)
	}
	if cfg.Physics.Damping != 0.25 {
		t.Errorf("Expected damping 0.25 from env file, got %v", cfg.Physics.Damping)
	}
}
