package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	AwardsKeyPrefix      = "awards:%d"
	PointsKeyPrefix      = "points:%d"
	LatestPostsKeyPrefix = "posts:latest:p1:s%d"
	ProfileKeyPrefix     = "profile:%s"
)

const (
	AwardsTTL  = 5 * time.Minute
	PointsTTL  = 5 * time.Minute
	LatestTTL  = time.Minute
	ProfileTTL = 2 * time.Minute
)

func AwardsKey(userID uint) string {
	return fmt.Sprintf(AwardsKeyPrefix, userID)
}

func PointsKey(userID uint) string {
	return fmt.Sprintf(PointsKeyPrefix, userID)
}

func ProfileKey(username string) string {
	return fmt.Sprintf(ProfileKeyPrefix, username)
}

// LatestPostsKey keys the cached first page of the anonymous site-wide
// listing by page size, so differently sized requests never collide.
func LatestPostsKey(size int) string {
	return fmt.Sprintf(LatestPostsKeyPrefix, size)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUserLookups drops the per-user awards and points entries,
// typically after an award grant or a score adjustment.
func InvalidateUserLookups(ctx context.Context, userID uint) {
	Invalidate(ctx, AwardsKey(userID))
	Invalidate(ctx, PointsKey(userID))
}

// InvalidateLatest drops every cached first page of the site-wide
// listing, one entry per page size.
func InvalidateLatest(ctx context.Context) {
	if client == nil {
		return
	}
	keys, err := client.Keys(ctx, "posts:latest:p1:*").Result()
	if err != nil {
		return
	}
	for _, key := range keys {
		client.Del(ctx, key)
	}
}
