package properties

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"primespace/internal/cache"
	"primespace/internal/model"
	"primespace/internal/store"
	"primespace/internal/worker"

	"github.com/redis/go-redis/v9"
)

// Listing reads go through a short-lived Redis cache. Keys carry an epoch
// that every mutation bumps, so stale entries are orphaned rather than
// hunted down and simply expire.
const (
	listCacheTTL = 30 * time.Second
	epochKey     = "properties:epoch"
)

func listCacheKey(epoch string, f store.PropertyFilter) string {
	return fmt.Sprintf("properties:list:%s:%s:%s:%s", epoch, f.Type, f.Status, f.Location)
}

func currentEpoch(ctx context.Context, rdb cache.Cache) (string, error) {
	epoch, err := rdb.Get(ctx, epochKey).Result()
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	if err != nil {
		return "", err
	}
	return epoch, nil
}

// cachedList returns the cached JSON body for the filter, or an error on
// any miss.
func cachedList(ctx context.Context, rdb cache.Cache, f store.PropertyFilter) ([]byte, error) {
	epoch, err := currentEpoch(ctx, rdb)
	if err != nil {
		return nil, err
	}
	return rdb.Get(ctx, listCacheKey(epoch, f)).Bytes()
}

// storeList caches a listing result, best effort.
func storeList(ctx context.Context, rdb cache.Cache, f store.PropertyFilter, properties []model.Property) {
	body, err := json.Marshal(properties)
	if err != nil {
		return
	}
	epoch, err := currentEpoch(ctx, rdb)
	if err != nil {
		return
	}
	if err := rdb.Set(ctx, listCacheKey(epoch, f), body, listCacheTTL).Err(); err != nil {
		log.Printf("cache listing: %v", err)
	}
}

// bumpListEpoch invalidates all cached listings off the request path.
func bumpListEpoch(rdb cache.Cache, wp worker.Pool) {
	wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Incr(ctx, epochKey).Err(); err != nil {
			log.Printf("bump listing cache epoch: %v", err)
		}
	})
}
