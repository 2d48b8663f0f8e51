// Package session keeps short-lived login handoff state outside the process.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/kelimo/internal/entity"
	"github.com/eslsoft/kelimo/internal/infrastructure/config"
	"github.com/eslsoft/kelimo/internal/repository"
)

const keyPrefix = "kelimo:login:"

type redisStore struct {
	rdb *goredis.Client
}

// NewLoginStateStore connects to redis. When redis.addr is empty the returned
// store rejects every call with entity.ErrLoginStoreDisabled.
func NewLoginStateStore(cfg *config.Config, logger *logrus.Logger) (repository.LoginStateStore, func(), error) {
	addr := strings.TrimSpace(cfg.Redis.Addr)
	if addr == "" {
		logger.Warn("redis.addr is empty, login redirects are disabled")
		return disabledStore{}, func() {}, nil
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewRedisStore(rdb), func() {
		if err := rdb.Close(); err != nil {
			logger.WithError(err).Warn("close redis")
		}
	}, nil
}

// NewRedisStore wraps an existing client.
func NewRedisStore(rdb *goredis.Client) repository.LoginStateStore {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Put(ctx context.Context, state, returnURL string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, keyPrefix+state, returnURL, ttl).Err(); err != nil {
		return &entity.StoreUnavailableError{Op: "save login state", Err: err}
	}
	return nil
}

// Take reads and deletes the state in one GETDEL, so a state can complete at most one login.
func (s *redisStore) Take(ctx context.Context, state string) (string, error) {
	returnURL, err := s.rdb.GetDel(ctx, keyPrefix+state).Result()
	switch {
	case errors.Is(err, goredis.Nil):
		return "", entity.ErrLoginStateNotFound
	case err != nil:
		return "", &entity.StoreUnavailableError{Op: "take login state", Err: err}
	}
	return returnURL, nil
}

type disabledStore struct{}

func (disabledStore) Put(context.Context, string, string, time.Duration) error {
	return entity.ErrLoginStoreDisabled
}

func (disabledStore) Take(context.Context, string) (string, error) {
	return "", entity.ErrLoginStoreDisabled
}
