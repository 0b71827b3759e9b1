package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"transcontrol-service/internal/domain/entity"
	"transcontrol-service/internal/domain/repository"
	"transcontrol-service/pkg/logger"

	gocache "github.com/patrickmn/go-cache"
)

const preregCacheKey = "preRegistration"

// Suggestions serves the autocomplete suggestion lists. Reads go through a
// TTL cache because every worksheet render asks for them; any write
// invalidates the cache.
type Suggestions struct {
	repo   repository.PreRegistrationRepository
	cache  *gocache.Cache
	logger logger.Logger
}

// NewSuggestions creates a new suggestion service
func NewSuggestions(repo repository.PreRegistrationRepository, ttl time.Duration, logger logger.Logger) *Suggestions {
	return &Suggestions{
		repo:   repo,
		cache:  gocache.New(ttl, 2*ttl),
		logger: logger,
	}
}

// Get returns the suggestion lists, from cache when fresh. A read failure
// degrades to the all-empty default.
func (s *Suggestions) Get(ctx context.Context) *entity.PreRegistrationData {
	if cached, ok := s.cache.Get(preregCacheKey); ok {
		return cached.(*entity.PreRegistrationData)
	}

	data, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Error("Failed to load pre-registration data", "error", err)
		return entity.EmptyPreRegistrationData()
	}

	s.cache.SetDefault(preregCacheKey, data)
	return data
}

// Update replaces the whole singleton document and invalidates the cache.
// Existing worksheet and schedule rows are never rewritten.
func (s *Suggestions) Update(ctx context.Context, data *entity.PreRegistrationData) error {
	if err := s.repo.Save(ctx, data); err != nil {
		return err
	}
	s.cache.Delete(preregCacheKey)
	return nil
}

// AddItem appends a trimmed value to one category list.
func (s *Suggestions) AddItem(ctx context.Context, category, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("empty suggestion value")
	}

	data := s.Get(ctx).Clone()
	list := data.Category(category)
	if list == nil {
		return fmt.Errorf("unknown suggestion category: %q", category)
	}
	*list = append(*list, value)
	return s.Update(ctx, data)
}

// RemoveItem drops the item at index from one category list.
func (s *Suggestions) RemoveItem(ctx context.Context, category string, index int) error {
	data := s.Get(ctx).Clone()
	list := data.Category(category)
	if list == nil {
		return fmt.Errorf("unknown suggestion category: %q", category)
	}
	if index < 0 || index >= len(*list) {
		return fmt.Errorf("suggestion index %d out of range", index)
	}
	*list = append((*list)[:index], (*list)[index+1:]...)
	return s.Update(ctx, data)
}

// RenameItem replaces the item at index in one category list.
func (s *Suggestions) RenameItem(ctx context.Context, category string, index int, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("empty suggestion value")
	}

	data := s.Get(ctx).Clone()
	list := data.Category(category)
	if list == nil {
		return fmt.Errorf("unknown suggestion category: %q", category)
	}
	if index < 0 || index >= len(*list) {
		return fmt.Errorf("suggestion index %d out of range", index)
	}
	(*list)[index] = value
	return s.Update(ctx, data)
}
