package storage

import (
	"context"

	"neurograph/internal/model"
)

// Recorder keeps snapshots taken by a host, grouped in sessions and indexed
// by frame number. Saving an existing (session, index) pair replaces it.
type Recorder interface {
	Init(ctx context.Context) error
	SaveFrame(ctx context.Context, frame model.Frame) error
	GetFrame(ctx context.Context, sessionID string, index int) (model.Frame, bool, error)
	ListFrames(ctx context.Context, sessionID string) ([]model.Frame, error)
	Sessions(ctx context.Context) ([]string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
