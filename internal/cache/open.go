package cache

import (
	"fmt"

	"github.com/katalvlaran/algotrace/internal/config"
)

// Open builds the store selected by c.Backend.
func Open(c config.Cache) (Store, error) {
	switch c.Backend {
	case config.CacheMemory:
		return NewMemory(c.Capacity), nil
	case config.CacheRedis:
		opts := []RedisOption{WithTTL(c.TTL.Std())}
		if c.Prefix != "" {
			opts = append(opts, WithPrefix(c.Prefix))
		}
		return NewRedis(c.RedisAddr, c.RedisPassword, c.RedisDB, opts...), nil
	case config.CacheNone, "":
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("cache: unknown backend %q", c.Backend)
	}
}
