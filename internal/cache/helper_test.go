package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

type cachedThing struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestAside_MissThenHit(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedThing) func() error {
		return func() error {
			fetches++
			*dest = cachedThing{Name: "latest", Count: 3}
			return nil
		}
	}

	var first cachedThing
	require.NoError(t, Aside(ctx, "posts:latest:p1", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "latest", first.Name)

	var second cachedThing
	require.NoError(t, Aside(ctx, "posts:latest:p1", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, fetches, "second read should be served from cache")
	assert.Equal(t, first, second)
}

func TestAside_NilClientAlwaysFetches(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	fetches := 0
	var dest cachedThing
	for i := 0; i < 2; i++ {
		require.NoError(t, Aside(ctx, "awards:1", &dest, time.Minute, func() error {
			fetches++
			dest = cachedThing{Name: "x"}
			return nil
		}))
	}
	assert.Equal(t, 2, fetches)
}

func TestInvalidateUserLookups(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, AwardsKey(9), []string{"a"}, time.Minute))
	require.NoError(t, SetJSON(ctx, PointsKey(9), 12.5, time.Minute))
	require.True(t, mr.Exists(AwardsKey(9)))
	require.True(t, mr.Exists(PointsKey(9)))

	InvalidateUserLookups(ctx, 9)

	assert.False(t, mr.Exists(AwardsKey(9)))
	assert.False(t, mr.Exists(PointsKey(9)))
}

func TestInvalidateLatest_DropsAllSizes(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, LatestPostsKey(10), cachedThing{Name: "s10"}, time.Minute))
	require.NoError(t, SetJSON(ctx, LatestPostsKey(20), cachedThing{Name: "s20"}, time.Minute))

	InvalidateLatest(ctx)

	assert.False(t, mr.Exists(LatestPostsKey(10)))
	assert.False(t, mr.Exists(LatestPostsKey(20)))
}

func TestGetJSON_Expiry(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, LatestPostsKey(20), cachedThing{Name: "page"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var dest cachedThing
	found, err := GetJSON(ctx, LatestPostsKey(20), &dest)
	require.NoError(t, err)
	assert.False(t, found)
}
