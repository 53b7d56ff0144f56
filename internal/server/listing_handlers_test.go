package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alcove/internal/cache"
	"alcove/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listingResponse struct {
	Posts      []models.PostView `json:"posts"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
}

func decodeListing(t *testing.T, resp *http.Response) listingResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out listingResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestGetUserPosts_AnonymousExcludesRestricted(t *testing.T) {
	_, app, db := newTestServer(t)
	seedListingFixture(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/users/maeve/posts", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeListing(t, resp)
	require.Len(t, got.Posts, 1)
	assert.Equal(t, "hello", got.Posts[0].Subject)
	assert.Equal(t, int64(1), got.TotalCount)
}

func TestGetUserPosts_PrivilegedSeesRestricted(t *testing.T) {
	s, app, db := newTestServer(t)
	seedListingFixture(t, db)

	viewer := &models.User{
		ID:           50,
		Username:     "mod",
		Email:        "mod@example.com",
		Password:     "x",
		Capabilities: string(models.CapSeeRestrictedForums),
	}
	require.NoError(t, db.Create(viewer).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/users/maeve/posts", nil)
	req.Header.Set("Authorization", "Bearer "+signedTokenFor(t, s, viewer))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeListing(t, resp)
	assert.Len(t, got.Posts, 2)
	assert.Equal(t, int64(2), got.TotalCount)
}

func TestGetUserPosts_UnknownUser(t *testing.T) {
	_, app, db := newTestServer(t)
	seedListingFixture(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/users/nobody/posts", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetUserPosts_InvalidPagination(t *testing.T) {
	_, app, db := newTestServer(t)
	seedListingFixture(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/users/maeve/posts?page=0", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetLatestPosts_WindowAndOrdering(t *testing.T) {
	_, app, db := newTestServer(t)
	poster := seedListingFixture(t, db)

	// Outside the three-day window; must not appear.
	var openTopic models.Topic
	require.NoError(t, db.Where("title = ?", "Welcome").First(&openTopic).Error)
	require.NoError(t, db.Create(&models.Post{
		Subject: "ancient", Body: "b", TopicID: openTopic.ID, UserID: poster.ID,
		CreatedAt: time.Now().Add(-96 * time.Hour),
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/latest", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeListing(t, resp)
	require.Len(t, got.Posts, 1, "restricted and stale posts are excluded")
	assert.Equal(t, "hello", got.Posts[0].Subject)
	for i := 0; i < len(got.Posts)-1; i++ {
		assert.False(t, got.Posts[i].CreatedAt.Before(got.Posts[i+1].CreatedAt))
	}
}

func TestGetLatestPosts_PageEcho(t *testing.T) {
	_, app, db := newTestServer(t)
	seedListingFixture(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/latest?page=2&size=5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeListing(t, resp)
	assert.Empty(t, got.Posts)
	assert.Equal(t, int64(1), got.TotalCount, "total reflects the filtered set, not the page")
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 5, got.Size)
}

func TestGetLatestPosts_EnrichmentInPayload(t *testing.T) {
	_, app, db := newTestServer(t)
	poster := seedListingFixture(t, db)

	award := &models.Award{ShortName: "poty", Description: "Poster of the year"}
	require.NoError(t, db.Create(award).Error)
	require.NoError(t, db.Create(&models.UserAward{
		UserID: poster.ID, AwardID: award.ID, Year: 2024,
	}).Error)
	require.NoError(t, db.Create(&models.Score{UserID: poster.ID, Points: 2600}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/latest", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeListing(t, resp)
	require.Len(t, got.Posts, 1)
	view := got.Posts[0]
	require.Len(t, view.Awards, 1)
	assert.Equal(t, "poty", view.Awards[0].ShortName)
	assert.Equal(t, float64(2600), view.Points)
	assert.Equal(t, "Master", view.RankLabel)
	assert.Equal(t, "maeve", view.PosterName)
}

// setupListingCache backs the cache package with miniredis for the
// duration of one test.
func setupListingCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })
	return mr
}

func TestGetLatestPosts_AnonymousFirstPageServedFromCache(t *testing.T) {
	mr := setupListingCache(t)
	_, app, db := newTestServer(t)
	poster := seedListingFixture(t, db)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/latest", nil))
	require.NoError(t, err)
	first := decodeListing(t, resp)
	_ = resp.Body.Close()
	require.Equal(t, int64(1), first.TotalCount)
	require.True(t, mr.Exists(cache.LatestPostsKey(20)), "first anonymous page should be cached")

	// A post created after the page was cached must not show up until
	// the entry expires.
	var topic models.Topic
	require.NoError(t, db.Where("title = ?", "Welcome").First(&topic).Error)
	require.NoError(t, db.Create(&models.Post{
		Subject: "fresh", Body: "b", TopicID: topic.ID, UserID: poster.ID,
		CreatedAt: time.Now(),
	}).Error)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/latest", nil))
	require.NoError(t, err)
	second := decodeListing(t, resp)
	_ = resp.Body.Close()

	// Served from cache, byte-for-byte the same page.
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), second.TotalCount)
}

func TestGetLatestPosts_AuthenticatedBypassesCache(t *testing.T) {
	setupListingCache(t)
	s, app, db := newTestServer(t)
	poster := seedListingFixture(t, db)

	// Prime the anonymous cache.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/latest", nil))
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var topic models.Topic
	require.NoError(t, db.Where("title = ?", "Welcome").First(&topic).Error)
	require.NoError(t, db.Create(&models.Post{
		Subject: "fresh", Body: "b", TopicID: topic.ID, UserID: poster.ID,
		CreatedAt: time.Now(),
	}).Error)

	// Eligibility flags are requester-specific, so a signed-in member
	// never reads the anonymous entry and sees the live listing.
	req := httptest.NewRequest(http.MethodGet, "/api/posts/latest", nil)
	req.Header.Set("Authorization", "Bearer "+signedTokenFor(t, s, poster))
	resp, err = app.Test(req)
	require.NoError(t, err)
	got := decodeListing(t, resp)
	_ = resp.Body.Close()

	require.Equal(t, int64(2), got.TotalCount)
	assert.Equal(t, "fresh", got.Posts[0].Subject)
}
