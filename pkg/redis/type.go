package redis

import (
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Config holds Redis configuration.
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// DefaultConnectTimeout bounds the initial ping.
const DefaultConnectTimeout = 5 * time.Second

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: invalid port")
	// ErrNil is returned by Get when the key does not exist.
	ErrNil = goredis.Nil
)

// redisImpl implements IRedis using go-redis.
type redisImpl struct {
	client *goredis.Client
}
