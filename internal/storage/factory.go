package storage

import "fmt"

// Options carries backend-specific settings for NewRecorder.
type Options struct {
	SQLitePath  string
	RedisAddr   string
	RedisPrefix string
}

func DefaultRecorderKind() string {
	return "memory"
}

func NewRecorder(kind string, opts Options) (Recorder, error) {
	switch kind {
	case "", "memory":
		return NewMemoryRecorder(), nil
	case "sqlite":
		return newSQLiteRecorder(opts.SQLitePath)
	case "redis":
		return NewRedisRecorder(opts.RedisAddr, opts.RedisPrefix), nil
	default:
		return nil, fmt.Errorf("unsupported recorder backend: %s", kind)
	}
}

func CloseIfSupported(r Recorder) error {
	closer, ok := r.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
