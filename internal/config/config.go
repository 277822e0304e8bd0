// Package config loads neurographctl settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidRecorder = errors.New("invalid recorder kind")
	ErrInvalidFrames   = errors.New("animation frames must be positive")
)

type Config struct {
	// Seed for bias and weight draws. Zero means time-based.
	Seed      int64           `yaml:"seed"`
	Logging   LoggingConfig   `yaml:"logging"`
	Recorder  RecorderConfig  `yaml:"recorder"`
	Animation AnimationConfig `yaml:"animation"`
	Server    ServerConfig    `yaml:"server"`
}

type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

type RecorderConfig struct {
	// Kind selects the frame recorder: memory, sqlite or redis.
	Kind        string `yaml:"kind"`
	SQLitePath  string `yaml:"sqlite_path"`
	RedisAddr   string `yaml:"redis_addr"`
	RedisPrefix string `yaml:"redis_prefix"`
}

type AnimationConfig struct {
	Delta  float64 `yaml:"delta"`
	Frames int     `yaml:"frames"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Recorder: RecorderConfig{
			Kind:        "memory",
			SQLitePath:  ":memory:",
			RedisAddr:   "localhost:6379",
			RedisPrefix: "neurograph:",
		},
		Animation: AnimationConfig{Delta: 0.016, Frames: 60},
		Server:    ServerConfig{Addr: ":8080"},
	}
}

// Load reads path over the defaults and then applies environment overrides.
// An empty path yields the defaults with overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Recorder.Kind {
	case "memory", "sqlite", "redis":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRecorder, c.Recorder.Kind)
	}
	if c.Animation.Frames <= 0 {
		return ErrInvalidFrames
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("NEUROGRAPH_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("NEUROGRAPH_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := getenv("NEUROGRAPH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getenv("NEUROGRAPH_RECORDER"); v != "" {
		c.Recorder.Kind = v
	}
	if v := getenv("NEUROGRAPH_SQLITE_PATH"); v != "" {
		c.Recorder.SQLitePath = v
	}
	if v := getenv("NEUROGRAPH_REDIS_ADDR"); v != "" {
		c.Recorder.RedisAddr = v
	}
	if v := getenv("NEUROGRAPH_SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	return nil
}
