package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Recorder.Kind != "memory" || cfg.Animation.Frames != 60 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neurograph.yaml")
	data := []byte(`
seed: 42
logging:
  level: debug
recorder:
  kind: redis
  redis_addr: cache:6379
animation:
  frames: 5
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 42 || cfg.Logging.Level != "debug" || cfg.Recorder.Kind != "redis" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Recorder.RedisAddr != "cache:6379" || cfg.Animation.Frames != 5 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Animation.Delta != 0.016 {
		t.Fatalf("expected default delta to survive, got %f", cfg.Animation.Delta)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("NEUROGRAPH_SEED", "7")
	t.Setenv("NEUROGRAPH_RECORDER", "sqlite")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 7 || cfg.Recorder.Kind != "sqlite" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsBadSeed(t *testing.T) {
	t.Setenv("NEUROGRAPH_SEED", "abc")
	if _, err := Load(""); err == nil {
		t.Fatal("expected seed parse error")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Recorder.Kind = "etcd"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidRecorder) {
		t.Fatalf("expected ErrInvalidRecorder, got %v", err)
	}

	cfg = Default()
	cfg.Animation.Frames = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidFrames) {
		t.Fatalf("expected ErrInvalidFrames, got %v", err)
	}
}
