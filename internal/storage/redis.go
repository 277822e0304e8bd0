package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"neurograph/internal/model"
)

const defaultRedisPrefix = "neurograph:"

// RedisRecorder keeps each session in a hash keyed by frame index and tracks
// session ids in a set.
type RedisRecorder struct {
	client *redis.Client
	prefix string
}

func NewRedisRecorder(addr, prefix string) *RedisRecorder {
	return NewRedisRecorderFromClient(redis.NewClient(&redis.Options{Addr: addr}), prefix)
}

func NewRedisRecorderFromClient(client *redis.Client, prefix string) *RedisRecorder {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisRecorder{client: client, prefix: prefix}
}

func (r *RedisRecorder) Init(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (r *RedisRecorder) SaveFrame(ctx context.Context, frame model.Frame) error {
	payload, err := EncodeFrame(frame)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, r.framesKey(frame.SessionID), strconv.Itoa(frame.Index), payload)
	pipe.SAdd(ctx, r.sessionsKey(), frame.SessionID)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *RedisRecorder) GetFrame(ctx context.Context, sessionID string, index int) (model.Frame, bool, error) {
	payload, err := r.client.HGet(ctx, r.framesKey(sessionID), strconv.Itoa(index)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Frame{}, false, nil
		}
		return model.Frame{}, false, err
	}

	frame, err := DecodeFrame(payload)
	if err != nil {
		return model.Frame{}, false, fmt.Errorf("decode frame %s/%d: %w", sessionID, index, err)
	}
	return frame, true, nil
}

func (r *RedisRecorder) ListFrames(ctx context.Context, sessionID string) ([]model.Frame, error) {
	entries, err := r.client.HGetAll(ctx, r.framesKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}

	frames := make([]model.Frame, 0, len(entries))
	for field, payload := range entries {
		frame, err := DecodeFrame([]byte(payload))
		if err != nil {
			return nil, fmt.Errorf("decode frame %s/%s: %w", sessionID, field, err)
		}
		frames = append(frames, frame)
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i].Index < frames[j].Index })
	return frames, nil
}

func (r *RedisRecorder) Sessions(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, r.sessionsKey()).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *RedisRecorder) DeleteSession(ctx context.Context, sessionID string) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.framesKey(sessionID))
	pipe.SRem(ctx, r.sessionsKey(), sessionID)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *RedisRecorder) Close() error {
	return r.client.Close()
}

func (r *RedisRecorder) framesKey(sessionID string) string {
	return r.prefix + "frames:" + sessionID
}

func (r *RedisRecorder) sessionsKey() string {
	return r.prefix + "sessions"
}
