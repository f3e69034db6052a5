package config

import (
	"fmt"

	"github.com/redis/rueidis"
)

// NewRedisClient returns a nil client when addr is empty; callers treat that
// as "no cache".
func NewRedisClient(addr string) (rueidis.Client, error) {
	if addr == "" {
		return nil, nil
	}

	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{addr},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("create redis client: %w", err)
	}

	return redisClient, nil
}
