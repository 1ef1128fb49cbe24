package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists carts as JSON documents with a session-scoped TTL, so a
// cart survives navigation and server restarts but expires with the session.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func cartKey(ownerID string) string {
	return "cart:" + ownerID
}

func (s *RedisStore) Get(ctx context.Context, ownerID string) ([]Entry, error) {
	raw, err := s.client.Get(ctx, cartKey(ownerID)).Result()
	if errors.Is(err, redis.Nil) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *RedisStore) Add(ctx context.Context, ownerID string, entry Entry) error {
	entries, err := s.Get(ctx, ownerID)
	if err != nil {
		return err
	}
	return s.save(ctx, ownerID, append(entries, entry))
}

func (s *RedisStore) Remove(ctx context.Context, ownerID, entryID string) error {
	entries, err := s.Get(ctx, ownerID)
	if err != nil {
		return err
	}

	for i, entry := range entries {
		if entry.ID == entryID {
			return s.save(ctx, ownerID, append(entries[:i], entries[i+1:]...))
		}
	}
	return ErrEntryNotFound
}

func (s *RedisStore) Clear(ctx context.Context, ownerID string) error {
	return s.client.Del(ctx, cartKey(ownerID)).Err()
}

func (s *RedisStore) save(ctx context.Context, ownerID string, entries []Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(ownerID), string(raw), s.ttl).Err()
}
