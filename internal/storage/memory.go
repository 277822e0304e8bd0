package storage

import (
	"context"
	"slices"
	"sort"
	"sync"

	"neurograph/internal/model"
)

type MemoryRecorder struct {
	mu          sync.RWMutex
	initialized bool
	sessions    map[string]map[int]model.Frame
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (r *MemoryRecorder) Init(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.initialized = true
	r.sessions = make(map[string]map[int]model.Frame)
	return nil
}

func (r *MemoryRecorder) SaveFrame(_ context.Context, frame model.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return ErrNotInitialized
	}
	frames, ok := r.sessions[frame.SessionID]
	if !ok {
		frames = make(map[int]model.Frame)
		r.sessions[frame.SessionID] = frames
	}
	frames[frame.Index] = cloneFrame(frame)
	return nil
}

func (r *MemoryRecorder) GetFrame(_ context.Context, sessionID string, index int) (model.Frame, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.initialized {
		return model.Frame{}, false, ErrNotInitialized
	}
	frame, ok := r.sessions[sessionID][index]
	if !ok {
		return model.Frame{}, false, nil
	}
	return cloneFrame(frame), true, nil
}

func (r *MemoryRecorder) ListFrames(_ context.Context, sessionID string) ([]model.Frame, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.initialized {
		return nil, ErrNotInitialized
	}
	frames := r.sessions[sessionID]
	out := make([]model.Frame, 0, len(frames))
	for _, frame := range frames {
		out = append(out, cloneFrame(frame))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

func (r *MemoryRecorder) Sessions(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.initialized {
		return nil, ErrNotInitialized
	}
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *MemoryRecorder) DeleteSession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return ErrNotInitialized
	}
	delete(r.sessions, sessionID)
	return nil
}

func cloneFrame(f model.Frame) model.Frame {
	f.Snapshot.Neurons = slices.Clone(f.Snapshot.Neurons)
	f.Snapshot.Connections = slices.Clone(f.Snapshot.Connections)
	return f
}
