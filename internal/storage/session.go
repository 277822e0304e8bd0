package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"neurograph/internal/model"
)

var ErrNotInitialized = errors.New("recorder is not initialized")

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// Session appends frames to one recorder session with increasing indexes.
type Session struct {
	ID       string
	recorder Recorder
	next     int
}

func NewSession(recorder Recorder) *Session {
	return &Session{ID: NewSessionID(), recorder: recorder}
}

// Record stores snap as the next frame of the session.
func (s *Session) Record(ctx context.Context, clock float64, snap model.Snapshot) (model.Frame, error) {
	frame := model.Frame{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		SessionID:       s.ID,
		Index:           s.next,
		Clock:           clock,
		Snapshot:        snap,
	}
	if err := s.recorder.SaveFrame(ctx, frame); err != nil {
		return model.Frame{}, fmt.Errorf("record frame %d: %w", s.next, err)
	}
	s.next++
	return frame, nil
}

func (s *Session) Frames() int { return s.next }
