package db

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/xw1nchester/nailsite/internal/cache"
	"github.com/xw1nchester/nailsite/internal/salon"
)

type CacheTTL struct {
	Salon    time.Duration
	Preview  time.Duration
	Template time.Duration
}

// CacheObserver is told whether every cache lookup hit or missed.
type CacheObserver interface {
	CacheLookup(kind, result string)
}

type cachedRepository struct {
	Repository

	salons    cache.Cache[salon.Salon]
	previews  cache.Cache[salon.PreviewPayload]
	templates cache.Cache[salon.Template]
	observer  CacheObserver
	logger    *zap.Logger
}

// NewCachedRepository keeps successful public reads in redis. Claims and
// viewer lookups always go to next. A nil client disables caching.
func NewCachedRepository(
	next Repository,
	client *redis.Client,
	ttl CacheTTL,
	observer CacheObserver,
	logger *zap.Logger,
) Repository {
	return &cachedRepository{
		Repository: next,
		salons:     cache.NewJSONCache[salon.Salon](client, "salon", ttl.Salon),
		previews:   cache.NewJSONCache[salon.PreviewPayload](client, "preview", ttl.Preview),
		templates:  cache.NewJSONCache[salon.Template](client, "template", ttl.Template),
		observer:   observer,
		logger:     logger,
	}
}

func (r *cachedRepository) GetSalon(ctx context.Context, sampleURL string) (*salon.Salon, error) {
	return cached(ctx, r, r.salons, "salon", sampleURL, func() (*salon.Salon, error) {
		return r.Repository.GetSalon(ctx, sampleURL)
	})
}

func (r *cachedRepository) GetPreview(ctx context.Context, templateID int) (*salon.PreviewPayload, error) {
	return cached(ctx, r, r.previews, "preview", strconv.Itoa(templateID), func() (*salon.PreviewPayload, error) {
		return r.Repository.GetPreview(ctx, templateID)
	})
}

func (r *cachedRepository) GetTemplate(ctx context.Context, id int) (*salon.Template, error) {
	return cached(ctx, r, r.templates, "template", strconv.Itoa(id), func() (*salon.Template, error) {
		return r.Repository.GetTemplate(ctx, id)
	})
}

func (r *cachedRepository) ForgetSalon(ctx context.Context, sampleURL string) error {
	if err := r.salons.Delete(ctx, sampleURL); err != nil {
		r.logger.Warn("failed to drop cached salon", zap.String("sample_url", sampleURL), zap.Error(err))
	}

	return r.Repository.ForgetSalon(ctx, sampleURL)
}

func (r *cachedRepository) lookup(kind, result string) {
	if r.observer != nil {
		r.observer.CacheLookup(kind, result)
	}
}

func cached[T any](
	ctx context.Context,
	r *cachedRepository,
	c cache.Cache[T],
	kind, key string,
	fetch func() (*T, error),
) (*T, error) {
	value, err := c.Get(ctx, key)
	switch {
	case err != nil:
		r.logger.Warn("cache read failed", zap.String("kind", kind), zap.String("key", key), zap.Error(err))
		r.lookup(kind, "error")
	case value != nil:
		r.lookup(kind, "hit")
		return value, nil
	default:
		r.lookup(kind, "miss")
	}

	value, err = fetch()
	if err != nil {
		return nil, err
	}

	if err := c.Set(ctx, key, value); err != nil {
		r.logger.Warn("cache write failed", zap.String("kind", kind), zap.String("key", key), zap.Error(err))
	}

	return value, nil
}
