package turnaround

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore is an opt-in session store backed by Redis, for events where
// several booth kiosks share one leaderboard. Players are appended to a
// single list key, so insertion order is the list order.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to Redis and verifies the connection.
// prefix namespaces the player list key (default "booth").
func NewRedisStore(addr, prefix string) (*RedisStore, error) {
	if prefix == "" {
		prefix = "booth"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("booth: redis ping %s: %w", addr, err)
	}
	return &RedisStore{client: client, key: prefix + ":players"}, nil
}

func (s *RedisStore) AppendPlayer(p Player) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("booth: marshal player: %w", err)
	}
	return s.client.RPush(context.Background(), s.key, data).Err()
}

func (s *RedisStore) Players() ([]Player, error) {
	items, err := s.client.LRange(context.Background(), s.key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	var players []Player
	for _, item := range items {
		var p Player
		if err := json.Unmarshal([]byte(item), &p); err != nil {
			return nil, fmt.Errorf("booth: unmarshal player: %w", err)
		}
		players = append(players, p)
	}
	return players, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
