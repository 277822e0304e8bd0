package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"neurograph/internal/config"
	"neurograph/internal/logging"
	"neurograph/internal/metrics"
	"neurograph/internal/storage"
	"neurograph/pkg/neurograph"
)

// env is the per-invocation state shared by commands.
type env struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Collector
	network *neurograph.Network
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		cfg.Seed = seed
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}

	logger := logging.NewLogger(cfg.Logging.Level, os.Stderr)
	collector := metrics.New()

	opts := []neurograph.Option{neurograph.WithLogger(logger), neurograph.WithMetrics(collector)}
	if cfg.Seed != 0 {
		opts = append(opts, neurograph.WithSeed(cfg.Seed))
	}

	return &env{
		cfg:     cfg,
		logger:  logger,
		metrics: collector,
		network: neurograph.New(opts...),
	}, nil
}

func (e *env) openRecorder(cmd *cobra.Command) (storage.Recorder, error) {
	rec, err := storage.NewRecorder(e.cfg.Recorder.Kind, storage.Options{
		SQLitePath:  e.cfg.Recorder.SQLitePath,
		RedisAddr:   e.cfg.Recorder.RedisAddr,
		RedisPrefix: e.cfg.Recorder.RedisPrefix,
	})
	if err != nil {
		return nil, err
	}
	if err := rec.Init(cmd.Context()); err != nil {
		_ = storage.CloseIfSupported(rec)
		return nil, err
	}
	return rec, nil
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
