package fight

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/FightBet_Go/internal/domain"
)

// terminalCache holds completed and failed fights. They never change again,
// so a cached copy can't go stale.
type terminalCache struct {
	lru *expirable.LRU[string, *domain.Fight]
}

func newTerminalCache(size int, ttl time.Duration) *terminalCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &terminalCache{
		lru: expirable.NewLRU[string, *domain.Fight](size, nil, ttl),
	}
}

func (c *terminalCache) Get(id string) (*domain.Fight, bool) {
	f, ok := c.lru.Get(id)
	if !ok {
		return nil, false
	}
	return f.Clone(), true
}

// Set stores f only if it is terminal
func (c *terminalCache) Set(f *domain.Fight) {
	if f == nil || !f.Status.IsTerminal() {
		return
	}
	c.lru.Add(f.ID, f.Clone())
}

func (c *terminalCache) Len() int {
	return c.lru.Len()
}
