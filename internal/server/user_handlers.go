package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetUserProfile handles GET /api/users/:username.
// The lookup is exact and case-sensitive.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	profile, err := s.userService.GetProfile(c.UserContext(), username)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profile)
}
