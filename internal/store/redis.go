package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisLikes keeps one set per user under prefix+username.
type RedisLikes struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisLikes(addr string, dbIndex int, prefix string) (*RedisLikes, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   dbIndex,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connect to redis %s: %w", addr, err)
	}
	return &RedisLikes{rdb: rdb, prefix: prefix}, nil
}

func (r *RedisLikes) key(username string) string {
	return r.prefix + username
}

func (r *RedisLikes) HasLiked(ctx context.Context, username string, reportID int) (bool, error) {
	ok, err := r.rdb.SIsMember(ctx, r.key(username), strconv.Itoa(reportID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis sismember: %w", err)
	}
	return ok, nil
}

func (r *RedisLikes) MarkLiked(ctx context.Context, username string, reportID int) (bool, error) {
	added, err := r.rdb.SAdd(ctx, r.key(username), strconv.Itoa(reportID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis sadd: %w", err)
	}
	return added == 1, nil
}

func (r *RedisLikes) Liked(ctx context.Context, username string, reportIDs []int) (map[int]bool, error) {
	out := make(map[int]bool)
	members, err := r.rdb.SMembers(ctx, r.key(username)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis smembers: %w", err)
	}

	wanted := make(map[int]bool, len(reportIDs))
	for _, id := range reportIDs {
		wanted[id] = true
	}
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err == nil && wanted[id] {
			out[id] = true
		}
	}
	return out, nil
}

func (r *RedisLikes) Close() error {
	return r.rdb.Close()
}
