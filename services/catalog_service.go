package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/models"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/repository"
)

const catalogCacheKey = "hijauan:catalog:names"

// CatalogService owns the id→name lookup map assembled from every product
// category collection. It is a read-through cache: in-memory snapshot first,
// then Redis, then Mongo. Lookup failures degrade to whatever subset of the
// catalog could be loaded; resolving names is never worth failing a page for.
type CatalogService interface {
	NameLookup(ctx context.Context) map[string]string
	Invalidate(ctx context.Context)
}

type catalogServiceImpl struct {
	repo   repository.ProductRepository
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger

	mu      sync.RWMutex
	names   map[string]string
	expires time.Time
}

func NewCatalogService(repo repository.ProductRepository, cache *redis.Client, ttl time.Duration, logger *zap.Logger) CatalogService {
	return &catalogServiceImpl{
		repo:   repo,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// NameLookup returns the current id→name snapshot. The returned map is
// shared and must be treated as read-only.
func (s *catalogServiceImpl) NameLookup(ctx context.Context) map[string]string {
	s.mu.RLock()
	if s.names != nil && time.Now().Before(s.expires) {
		names := s.names
		s.mu.RUnlock()
		return names
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.names != nil && time.Now().Before(s.expires) {
		return s.names
	}

	names := s.fromRedis(ctx)
	if names == nil {
		names = s.fromMongo(ctx)
		s.toRedis(ctx, names)
	}

	s.names = names
	s.expires = time.Now().Add(s.ttl)
	return names
}

// Invalidate drops both cache layers; the next lookup rebuilds from Mongo.
func (s *catalogServiceImpl) Invalidate(ctx context.Context) {
	s.mu.Lock()
	s.names = nil
	s.expires = time.Time{}
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.Del(ctx, catalogCacheKey).Err(); err != nil {
			s.logger.Warn("Failed to invalidate catalog cache", zap.Error(err))
		}
	}
}

func (s *catalogServiceImpl) fromRedis(ctx context.Context) map[string]string {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("Catalog cache read failed", zap.Error(err))
		}
		return nil
	}
	var names map[string]string
	if err := json.Unmarshal(raw, &names); err != nil {
		s.logger.Warn("Catalog cache payload corrupt", zap.Error(err))
		return nil
	}
	return names
}

func (s *catalogServiceImpl) toRedis(ctx context.Context, names map[string]string) {
	if s.cache == nil || len(names) == 0 {
		return
	}
	raw, err := json.Marshal(names)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, catalogCacheKey, raw, s.ttl).Err(); err != nil {
		s.logger.Warn("Catalog cache write failed", zap.Error(err))
	}
}

// fromMongo queries every category collection concurrently and merges the
// results under a lock. A failed category is logged and skipped so one bad
// collection cannot blank out the whole lookup.
func (s *catalogServiceImpl) fromMongo(ctx context.Context) map[string]string {
	merged := make(map[string]string)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, category := range models.ProductCategories {
		wg.Add(1)
		go func(category string) {
			defer wg.Done()
			names, err := s.repo.Names(ctx, category)
			if err != nil {
				s.logger.Warn("Catalog load failed for category",
					zap.String("category", category), zap.Error(err))
				return
			}
			mu.Lock()
			for id, name := range names {
				merged[id] = name
			}
			mu.Unlock()
		}(category)
	}
	wg.Wait()
	return merged
}
