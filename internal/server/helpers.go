package server

import (
	"errors"

	"alcove/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// parsePage extracts 1-based page and size query parameters. Missing
// parameters fall back to page 1 with the default size; explicitly
// invalid values are left for PageRequest.Validate to reject.
func parsePage(c *fiber.Ctx) models.PageRequest {
	page := c.QueryInt("page", 1)
	size := c.QueryInt("size", defaultPageSize)
	if size > maxPageSize {
		size = maxPageSize
	}
	return models.PageRequest{Page: page, Size: size}
}

// respondServiceError maps a service error onto an HTTP status. AppError
// codes carry their own status semantics; anything else is internal.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return models.RespondWithError(c, appErr.HTTPStatus(), appErr)
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError,
		models.NewInternalError(err))
}

// pageResponse is the envelope for paginated listings.
func pageResponse(page *models.PostPage) fiber.Map {
	return fiber.Map{
		"posts":       page.Items,
		"total_count": page.TotalCount,
		"page":        page.Request.Page,
		"size":        page.Request.Size,
	}
}
