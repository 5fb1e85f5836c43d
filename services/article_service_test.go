package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cabin-backend/models"
	"cabin-backend/repository"
)

func newArticleService() *ArticleService {
	return NewArticleService(repository.NewMemoryArticleRepository(), zap.NewNop())
}

func addArticle(t *testing.T, svc *ArticleService, title, content, category string, published bool) *models.Article {
	t.Helper()
	article, err := svc.Add(context.Background(), ArticleInput{
		Title:     title,
		Content:   content,
		Category:  category,
		Published: published,
	})
	require.NoError(t, err)
	return article
}

func TestArticleService_AddStampsTimestamps(t *testing.T) {
	svc := newArticleService()

	before := time.Now()
	article := addArticle(t, svc, "Cabin Booking FAQ", "## FAQ", models.CategoryBooking, true)

	assert.NotEmpty(t, article.ID)
	assert.WithinDuration(t, before, article.CreatedAt, 5*time.Second)
	assert.Equal(t, article.CreatedAt, article.UpdatedAt)
}

func TestArticleService_AddUnknownCategory(t *testing.T) {
	svc := newArticleService()

	_, err := svc.Add(context.Background(), ArticleInput{
		Title: "x", Content: "y", Category: "weather",
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestArticleService_UpdateRefreshesUpdatedAt(t *testing.T) {
	svc := newArticleService()
	article := addArticle(t, svc, "Amenities", "Hot tub", models.CategoryAmenities, true)

	time.Sleep(10 * time.Millisecond)
	title := "Cabin Amenities"
	updated, err := svc.Update(context.Background(), article.ID, ArticleUpdate{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Cabin Amenities", updated.Title)
	assert.Equal(t, "Hot tub", updated.Content, "unset fields stay put")
	assert.True(t, updated.UpdatedAt.After(article.UpdatedAt))
	assert.Equal(t, article.CreatedAt, updated.CreatedAt)
}

func TestArticleService_PublishGating(t *testing.T) {
	svc := newArticleService()
	ctx := context.Background()

	published := addArticle(t, svc, "Trails", "Hiking trails", models.CategoryActivities, true)
	draft := addArticle(t, svc, "Draft policies", "Cancellation draft", models.CategoryPolicies, false)

	// guest-facing list hides drafts
	visible, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, published.ID, visible[0].ID)

	// admin list shows everything
	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// direct retrieval of a draft looks like a miss for guests
	_, err = svc.GetByID(ctx, draft.ID, false)
	assert.ErrorIs(t, err, models.ErrNotFound)
	got, err := svc.GetByID(ctx, draft.ID, true)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, got.ID)
}

func TestArticleService_ListByCategory(t *testing.T) {
	svc := newArticleService()
	ctx := context.Background()

	addArticle(t, svc, "FAQ", "Booking questions", models.CategoryBooking, true)
	addArticle(t, svc, "Draft FAQ", "More booking questions", models.CategoryBooking, false)
	addArticle(t, svc, "Trails", "Hiking", models.CategoryActivities, true)

	booking, err := svc.ListByCategory(ctx, models.CategoryBooking)
	require.NoError(t, err)
	require.Len(t, booking, 1)
	assert.Equal(t, "FAQ", booking[0].Title)

	_, err = svc.ListByCategory(ctx, "weather")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestArticleService_Search(t *testing.T) {
	svc := newArticleService()
	ctx := context.Background()

	addArticle(t, svc, "Cabin Amenities", "Hot tub and BBQ grill", models.CategoryAmenities, true)
	addArticle(t, svc, "Local Hiking Trails", "Mountain View Trail", models.CategoryActivities, true)
	addArticle(t, svc, "Secret draft", "hot tub maintenance", models.CategoryAmenities, false)

	// case-insensitive match over title and content, published only
	results, err := svc.Search(ctx, "HOT TUB")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Cabin Amenities", results[0].Title)

	results, err = svc.Search(ctx, "trail")
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = svc.Search(ctx, "sauna")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestArticleService_Delete(t *testing.T) {
	svc := newArticleService()
	ctx := context.Background()

	article := addArticle(t, svc, "Doomed", "x", models.CategoryGeneral, true)
	require.NoError(t, svc.Delete(ctx, article.ID))

	_, err := svc.GetByID(ctx, article.ID, true)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, article.ID), models.ErrNotFound)
}
