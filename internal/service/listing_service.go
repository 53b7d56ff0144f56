package service

import (
	"context"
	"log/slog"
	"time"

	"alcove/internal/cache"
	"alcove/internal/middleware"
	"alcove/internal/models"
	"alcove/internal/observability"
	"alcove/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// LatestWindow is the recency window for the site-wide listing. Posts
// older than this are excluded even when otherwise visible.
const LatestWindow = 72 * time.Hour

// AwardsLookup resolves a member's award summaries.
type AwardsLookup interface {
	ForUser(ctx context.Context, userID uint) ([]models.AwardSummary, error)
}

// PointsLookup resolves a member's point total and rank label.
type PointsLookup interface {
	PlayerPoints(ctx context.Context, userID uint) (float64, string, error)
}

// ListingService aggregates permission-filtered, ordered, paginated
// post listings enriched with poster profile data, awards, and rank.
type ListingService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
	awards   AwardsLookup
	points   PointsLookup
	now      func() time.Time
}

func NewListingService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	awards AwardsLookup,
	points PointsLookup,
) *ListingService {
	return &ListingService{
		userRepo: userRepo,
		postRepo: postRepo,
		awards:   awards,
		points:   points,
		now:      time.Now,
	}
}

// ListByUser returns one page of the named member's posts visible to
// the requester. An unknown username yields the not-found outcome, not
// an empty page.
func (s *ListingService) ListByUser(ctx context.Context, username string, requester models.Requester, page models.PageRequest) (*models.PostPage, error) {
	span, ctx := observability.NewSpan(ctx, "listing.by_user")
	defer span.End()
	span.AddAttributes(
		attribute.String("listing.username", username),
		attribute.Int("listing.page", page.Page),
	)

	if err := page.Validate(); err != nil {
		observability.ListingRequests.WithLabelValues("user", "invalid").Inc()
		span.SetError(err)
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		observability.ListingRequests.WithLabelValues("user", "not_found").Inc()
		span.SetError(err)
		return nil, err
	}

	includeRestricted := requester.Caps.Has(models.CapSeeRestrictedForums)
	posts, total, err := s.postRepo.ByAuthor(ctx, user.ID, includeRestricted, page.Size, page.Offset())
	if err != nil {
		observability.ListingRequests.WithLabelValues("user", "error").Inc()
		span.SetError(err)
		return nil, err
	}

	observability.ListingRequests.WithLabelValues("user", "ok").Inc()
	span.AddAttributes(attribute.Int64("listing.total", total))
	return &models.PostPage{
		Items:      s.buildViews(ctx, posts, requester),
		TotalCount: total,
		Request:    page,
	}, nil
}

// ListLatest returns one page of the site-wide listing: posts created
// within the last 3 days, visible to the requester, newest first.
func (s *ListingService) ListLatest(ctx context.Context, requester models.Requester, page models.PageRequest) (*models.PostPage, error) {
	if err := page.Validate(); err != nil {
		observability.ListingRequests.WithLabelValues("latest", "invalid").Inc()
		return nil, err
	}

	// The first anonymous page is the hot path; serve it cache-aside.
	// Requester-specific pages are never cached since eligibility flags
	// differ per principal.
	if requester.IsAnonymous() && page.Page == 1 {
		var cached models.PostPage
		err := cache.Aside(ctx, cache.LatestPostsKey(page.Size), &cached, cache.LatestTTL, func() error {
			result, fetchErr := s.fetchLatest(ctx, requester, page)
			if fetchErr != nil {
				return fetchErr
			}
			cached = *result
			return nil
		})
		if err != nil {
			observability.ListingRequests.WithLabelValues("latest", "error").Inc()
			return nil, err
		}
		observability.ListingRequests.WithLabelValues("latest", "ok").Inc()
		return &cached, nil
	}

	result, err := s.fetchLatest(ctx, requester, page)
	if err != nil {
		observability.ListingRequests.WithLabelValues("latest", "error").Inc()
		return nil, err
	}
	observability.ListingRequests.WithLabelValues("latest", "ok").Inc()
	return result, nil
}

func (s *ListingService) fetchLatest(ctx context.Context, requester models.Requester, page models.PageRequest) (*models.PostPage, error) {
	span, ctx := observability.NewSpan(ctx, "listing.latest_window")
	defer span.End()
	span.AddAttributes(attribute.Int("listing.page", page.Page))

	since := s.now().Add(-LatestWindow)
	includeRestricted := requester.Caps.Has(models.CapSeeRestrictedForums)

	posts, total, err := s.postRepo.Recent(ctx, since, includeRestricted, page.Size, page.Offset())
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	span.AddAttributes(attribute.Int64("listing.total", total))

	return &models.PostPage{
		Items:      s.buildViews(ctx, posts, requester),
		TotalCount: total,
		Request:    page,
	}, nil
}

// buildViews assembles the view records for one page. Awards and points
// are fetched once per distinct author rather than per post; lookup
// failures degrade to empty awards and a zero score without failing
// the listing.
func (s *ListingService) buildViews(ctx context.Context, posts []*models.Post, requester models.Requester) []models.PostView {
	at := s.now()

	type enrichment struct {
		awards []models.AwardSummary
		points float64
		rank   string
	}
	byAuthor := make(map[uint]enrichment)

	for _, post := range posts {
		if _, done := byAuthor[post.UserID]; done {
			continue
		}
		var e enrichment
		awards, err := s.awards.ForUser(ctx, post.UserID)
		if err != nil {
			middleware.Logger.WarnContext(ctx, "awards lookup failed",
				slog.Any("user_id", post.UserID),
				slog.String("error", err.Error()),
			)
		} else {
			e.awards = awards
		}
		points, rank, err := s.points.PlayerPoints(ctx, post.UserID)
		if err != nil {
			middleware.Logger.WarnContext(ctx, "points lookup failed",
				slog.Any("user_id", post.UserID),
				slog.String("error", err.Error()),
			)
		} else {
			e.points, e.rank = points, rank
		}
		byAuthor[post.UserID] = e
	}

	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		e := byAuthor[post.UserID]
		views = append(views, models.BuildPostView(post, requester, e.awards, e.points, e.rank, at))
	}
	return views
}
