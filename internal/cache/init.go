package cache

import (
	"context"
	"time"

	"github.com/bizledger/bizledger/internal/config"
	"github.com/bizledger/bizledger/internal/logger"
)

// Initialize selects a cache backend from configuration. A disabled
// cache returns a no-op implementation so call sites stay unconditional.
func Initialize(cfg *config.Configuration, log *logger.Logger) (Cache, error) {
	if !cfg.Cache.Enabled {
		return &noopCache{}, nil
	}

	switch cfg.Cache.Backend {
	case "redis":
		return NewRedisCache(cfg, log)
	default:
		return NewInMemoryCache(), nil
	}
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (interface{}, bool)             { return nil, false }
func (noopCache) Set(context.Context, string, interface{}, time.Duration)     {}
func (noopCache) Delete(context.Context, string)                              {}
func (noopCache) DeleteByPrefix(context.Context, string)                      {}
func (noopCache) Flush(context.Context)                                       {}
