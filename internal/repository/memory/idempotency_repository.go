package memory

import (
	"time"

	"mindfulme-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type IdempotencyRepository struct {
	cache *cache.Cache
}

func NewIdempotencyRepository(ttl time.Duration) *IdempotencyRepository {
	// Expired replays are purged every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	return &IdempotencyRepository{
		cache: c,
	}
}

func (r *IdempotencyRepository) Save(response *store.ReplayedResponse) {
	r.cache.Set(response.Key, response, cache.DefaultExpiration)
}

func (r *IdempotencyRepository) Get(key string) (*store.ReplayedResponse, bool) {
	if x, found := r.cache.Get(key); found {
		return x.(*store.ReplayedResponse), true
	}
	return nil, false
}

func (r *IdempotencyRepository) Delete(key string) {
	r.cache.Delete(key)
}
