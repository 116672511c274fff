package store

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MemoryLikes keeps flags per user in an LRU, so the least recently active
// users are forgotten first once maxUsers is reached.
type MemoryLikes struct {
	mu    sync.Mutex
	users *lru.Cache[string, map[int]struct{}]
}

func NewMemoryLikes(maxUsers int) (*MemoryLikes, error) {
	if maxUsers <= 0 {
		maxUsers = 10000
	}
	c, err := lru.New[string, map[int]struct{}](maxUsers)
	if err != nil {
		return nil, fmt.Errorf("create likes cache: %w", err)
	}
	return &MemoryLikes{users: c}, nil
}

func (m *MemoryLikes) HasLiked(_ context.Context, username string, reportID int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.users.Get(username)
	if !ok {
		return false, nil
	}
	_, liked := set[reportID]
	return liked, nil
}

func (m *MemoryLikes) MarkLiked(_ context.Context, username string, reportID int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.users.Get(username)
	if !ok {
		set = make(map[int]struct{})
		m.users.Add(username, set)
	}
	if _, liked := set[reportID]; liked {
		return false, nil
	}
	set[reportID] = struct{}{}
	return true, nil
}

func (m *MemoryLikes) Liked(_ context.Context, username string, reportIDs []int) (map[int]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[int]bool)
	set, ok := m.users.Get(username)
	if !ok {
		return out, nil
	}
	for _, id := range reportIDs {
		if _, liked := set[id]; liked {
			out[id] = true
		}
	}
	return out, nil
}

func (m *MemoryLikes) Close() error {
	m.users.Purge()
	return nil
}
