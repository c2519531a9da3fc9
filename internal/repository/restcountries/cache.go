package restcountries

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"countrybot/internal/domain"
	"countrybot/internal/repository"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cacheTTL = 6 * time.Hour

// CachedDirectory wraps a CountryDirectory with a Redis read-through cache.
// Cache failures are logged and fall through to the live directory, so a
// broken Redis never breaks lookups.
type CachedDirectory struct {
	inner  repository.CountryDirectory
	rdb    *redis.Client
	logger *zap.Logger
}

// NewCachedDirectory creates a caching wrapper around a directory
func NewCachedDirectory(inner repository.CountryDirectory, rdb *redis.Client, logger *zap.Logger) *CachedDirectory {
	return &CachedDirectory{
		inner:  inner,
		rdb:    rdb,
		logger: logger,
	}
}

// Search returns cached results for a name query, fetching on miss
func (d *CachedDirectory) Search(name string) ([]domain.CountryRecord, error) {
	key := "countries:name:" + strings.ToLower(strings.TrimSpace(name))
	return d.throughCache(key, func() ([]domain.CountryRecord, error) {
		return d.inner.Search(name)
	})
}

// ByRegion returns cached results for a region, fetching on miss
func (d *CachedDirectory) ByRegion(region string) ([]domain.CountryRecord, error) {
	key := "countries:region:" + strings.ToLower(strings.TrimSpace(region))
	return d.throughCache(key, func() ([]domain.CountryRecord, error) {
		return d.inner.ByRegion(region)
	})
}

// All returns the cached full catalog, fetching on miss
func (d *CachedDirectory) All() ([]domain.CountryRecord, error) {
	return d.throughCache("countries:all", d.inner.All)
}

func (d *CachedDirectory) throughCache(key string, fetch func() ([]domain.CountryRecord, error)) ([]domain.CountryRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if data, err := d.rdb.Get(ctx, key).Bytes(); err == nil {
		var countries []domain.CountryRecord
		if err := json.Unmarshal(data, &countries); err == nil {
			return countries, nil
		}
		d.logger.Warn("Failed to decode cached countries", zap.String("key", key))
	} else if err != redis.Nil {
		d.logger.Warn("Redis read failed", zap.String("key", key), zap.Error(err))
	}

	countries, err := fetch()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(countries); err == nil {
		if err := d.rdb.Set(ctx, key, data, cacheTTL).Err(); err != nil {
			d.logger.Warn("Redis write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return countries, nil
}
