package cachedresults

import (
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/metroplan/metroplan/pkg/redis_client"
)

// Cache holds serialized plan results keyed by the request parameters.
// Plans are deterministic for a given snapshot so the only reason for the
// short expiry is picking up rebuilds and overlay changes.
type Cache struct {
	Cache *cache.Cache[string]
}

const planResultExpiration = 5 * time.Minute

func (c *Cache) Setup() {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(planResultExpiration))

	c.Cache = cache.New[string](redisStore)
}
