package cache

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"vershash/pkg/logger"

	"go.uber.org/fx"
)

var (
	Module = fx.Provide(New)

	// ErrMiss covers both an absent key and an expired entry.
	ErrMiss = errors.New("cache miss")
)

// DefaultTTL bounds how stale a catalog read may be.
const DefaultTTL = 60 * time.Second

type (
	Params struct {
		fx.In
		Logger logger.Logger
	}

	ICache interface {
		SaveObj(key string, value interface{}) error
		GetObj(key string, value interface{}) error
		Delete(key string)
	}

	entry struct {
		payload  []byte
		storedAt time.Time
	}

	cache struct {
		logger  logger.Logger
		ttl     time.Duration
		entries map[string]entry
		m       sync.RWMutex
	}
)

func New(p Params) ICache {
	return NewWithTTL(p.Logger, DefaultTTL)
}

func NewWithTTL(lg logger.Logger, ttl time.Duration) ICache {
	return &cache{
		logger:  lg,
		ttl:     ttl,
		entries: map[string]entry{},
	}
}

func (c *cache) SaveObj(key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.m.Lock()
	defer c.m.Unlock()

	c.entries[key] = entry{payload: b, storedAt: time.Now()}
	return nil
}

func (c *cache) GetObj(key string, value interface{}) error {
	c.m.RLock()
	e, ok := c.entries[key]
	c.m.RUnlock()

	if !ok || time.Since(e.storedAt) > c.ttl {
		return ErrMiss
	}

	return json.Unmarshal(e.payload, value)
}

func (c *cache) Delete(key string) {
	c.m.Lock()
	defer c.m.Unlock()

	delete(c.entries, key)
}
