package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/author/model"
	"library-catalog/pkg/cache"
)

// Cache key constants
const (
	authorCacheKeyPrefix = "author:"
	defaultCacheTTL      = 15 * time.Minute
)

// cachedRepository wraps another repository with a read-through cache on GetByID.
// Authors are never updated or deleted here, so entries only expire by TTL.
type cachedRepository struct {
	next  RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedRepository decorates next with cache. A non-positive ttl uses the default.
func NewCachedRepository(next RepositoryInterface, c cache.Cache, ttl time.Duration) RepositoryInterface {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &cachedRepository{
		next:  next,
		cache: c,
		ttl:   ttl,
	}
}

func (r *cachedRepository) ListSortedByFamilyName(ctx context.Context) ([]model.Author, error) {
	return r.next.ListSortedByFamilyName(ctx)
}

// GetByID retrieves author by UUID with caching. Cache errors fall through to the store.
func (r *cachedRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var a model.Author
	found, err := r.cache.Get(ctx, cacheKey, &a)
	if err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("author cache read failed")
	}
	if err == nil && found {
		return &a, nil
	}

	author, err := r.next.GetByID(ctx, id)
	if err != nil || author == nil {
		return author, err
	}

	if err := r.cache.Set(ctx, cacheKey, author, r.ttl); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("author cache write failed")
	}
	return author, nil
}

func (r *cachedRepository) FindOne(ctx context.Context, filter model.DuplicateFilter) (*model.Author, error) {
	return r.next.FindOne(ctx, filter)
}

func (r *cachedRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	created, err := r.next.Create(ctx, a)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, authorCacheKeyPrefix+created.ID.String(), created, r.ttl); err != nil {
		log.Warn().Err(err).Str("author_id", created.ID.String()).Msg("author cache write failed")
	}
	return created, nil
}
