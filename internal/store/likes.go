package store

import (
	"context"
	"fmt"
	"log"

	"facilitywatch/internal/config"
	"facilitywatch/internal/db"
)

// Likes remembers which reports a user already upvoted, so the button can be
// rendered disabled and a second click does not reach the API.
type Likes interface {
	HasLiked(ctx context.Context, username string, reportID int) (bool, error)
	// MarkLiked records the flag. It returns false when it was already set.
	MarkLiked(ctx context.Context, username string, reportID int) (bool, error)
	// Liked returns the subset of ids the user has liked.
	Liked(ctx context.Context, username string, reportIDs []int) (map[int]bool, error)
	Close() error
}

// Open builds the backend selected by cfg.Backend.
func Open(cfg config.LikesConfig) (Likes, error) {
	switch cfg.Backend {
	case "", "memory":
		log.Printf("Liked flags kept in memory (max %d users)", cfg.MemoryUsers)
		return NewMemoryLikes(cfg.MemoryUsers)
	case "postgres":
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return NewGormLikes(conn), nil
	case "redis":
		return NewRedisLikes(cfg.RedisAddr, cfg.RedisDB, cfg.RedisPrefix)
	default:
		return nil, fmt.Errorf("unknown likes backend %q", cfg.Backend)
	}
}
