package server

import (
	"alcove/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetLatestPosts handles GET /api/posts/latest.
// Returns the site-wide listing of posts created in the last three
// days, newest first. Restricted-forum posts appear only for holders of
// the see-restricted-forums capability.
func (s *Server) GetLatestPosts(c *fiber.Ctx) error {
	requester := middleware.RequesterFromCtx(c)
	page := parsePage(c)

	result, err := s.listingService.ListLatest(c.UserContext(), requester, page)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(pageResponse(result))
}

// GetUserPosts handles GET /api/users/:username/posts.
// Returns the named member's posts, newest first, with the same
// restricted-forum filtering as the site-wide listing.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	username := c.Params("username")
	requester := middleware.RequesterFromCtx(c)
	page := parsePage(c)

	result, err := s.listingService.ListByUser(c.UserContext(), username, requester, page)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(pageResponse(result))
}
