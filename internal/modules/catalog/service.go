package catalog

import (
	"context"
	"errors"
	"log/slog"
)

// Service is the read path for the storefront. The cache is optional;
// with no cache every call goes straight to the repo.
type Service struct {
	repo  *Repo
	cache Cache
	log   *slog.Logger
}

func NewService(repo *Repo, cache Cache, log *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, log: log}
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Product, error) {
	key := listCacheKey(f)
	if s.cache != nil && key != "" {
		items, err := s.cache.GetList(ctx, key)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			s.log.Warn("catalog_cache_get_failed", slog.Any("err", err))
		}
	}

	items, err := s.repo.ListActive(ctx, f)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && key != "" {
		if err := s.cache.SetList(ctx, key, items); err != nil {
			s.log.Warn("catalog_cache_set_failed", slog.Any("err", err))
		}
	}
	return items, nil
}

func (s *Service) Detail(ctx context.Context, slug string) (Product, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) GetByIDs(ctx context.Context, ids []string) (map[string]Product, error) {
	return s.repo.GetByIDs(ctx, ids)
}

// InvalidateCache is called after admin writes.
func (s *Service) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("catalog_cache_invalidate_failed", slog.Any("err", err))
	}
}

// Only the unfiltered default page is cached; filtered pages are cheap
// and rare enough to hit MySQL directly.
func listCacheKey(f ListFilter) string {
	if f.Drop == "" && f.Category == "" && f.Offset == 0 && (f.Limit == 0 || f.Limit == 24) {
		return "all"
	}
	return ""
}
