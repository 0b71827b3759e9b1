package usecase

import (
	"context"
	"testing"
	"time"

	"transcontrol-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSuggestions(repo *fakePreregRepo) *Suggestions {
	return NewSuggestions(repo, time.Minute, nopLogger{})
}

func TestSuggestionsGetReturnsDefaultWhenAbsent(t *testing.T) {
	suggestions := newTestSuggestions(newFakePreregRepo())

	data := suggestions.Get(context.Background())
	require.NotNil(t, data)
	assert.Empty(t, data.Drivers)
	assert.Empty(t, data.Plates)
}

func TestSuggestionsAddItemPersistsAndInvalidatesCache(t *testing.T) {
	repo := newFakePreregRepo()
	suggestions := newTestSuggestions(repo)
	ctx := context.Background()

	// Prime the cache.
	_ = suggestions.Get(ctx)

	require.NoError(t, suggestions.AddItem(ctx, entity.CategoryDrivers, "  João  "))
	assert.Equal(t, 1, repo.saves)

	data := suggestions.Get(ctx)
	assert.Equal(t, []string{"João"}, data.Drivers)
}

func TestSuggestionsAddItemRejectsBlankAndUnknownCategory(t *testing.T) {
	suggestions := newTestSuggestions(newFakePreregRepo())
	ctx := context.Background()

	assert.Error(t, suggestions.AddItem(ctx, entity.CategoryDrivers, "   "))
	assert.Error(t, suggestions.AddItem(ctx, "trailers", "X"))
}

func TestSuggestionsRemoveItemBoundsChecked(t *testing.T) {
	repo := newFakePreregRepo()
	repo.data = &entity.PreRegistrationData{Plates: []string{"ABC-123", "DEF-456"}}
	suggestions := newTestSuggestions(repo)
	ctx := context.Background()

	assert.Error(t, suggestions.RemoveItem(ctx, entity.CategoryPlates, 2))
	assert.Error(t, suggestions.RemoveItem(ctx, entity.CategoryPlates, -1))

	require.NoError(t, suggestions.RemoveItem(ctx, entity.CategoryPlates, 0))
	assert.Equal(t, []string{"DEF-456"}, suggestions.Get(ctx).Plates)
}

func TestSuggestionsRenameItem(t *testing.T) {
	repo := newFakePreregRepo()
	repo.data = &entity.PreRegistrationData{Origins: []string{"CD São Paulo"}}
	suggestions := newTestSuggestions(repo)
	ctx := context.Background()

	require.NoError(t, suggestions.RenameItem(ctx, entity.CategoryOrigins, 0, "CD Campinas"))
	assert.Equal(t, []string{"CD Campinas"}, suggestions.Get(ctx).Origins)
}

func TestSuggestionsEditLeavesCachedValueUntouched(t *testing.T) {
	repo := newFakePreregRepo()
	repo.data = &entity.PreRegistrationData{Drivers: []string{"Ana"}}
	suggestions := newTestSuggestions(repo)
	ctx := context.Background()

	before := suggestions.Get(ctx)
	require.NoError(t, suggestions.AddItem(ctx, entity.CategoryDrivers, "Bruno"))

	assert.Equal(t, []string{"Ana"}, before.Drivers)
	assert.Equal(t, []string{"Ana", "Bruno"}, suggestions.Get(ctx).Drivers)
}
