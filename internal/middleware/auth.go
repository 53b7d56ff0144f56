// Package middleware provides authentication and authorization middleware for the application.
package middleware

import (
	"strconv"
	"strings"

	"alcove/internal/config"
	"alcove/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// RequesterFromCtx returns the requester stored by the auth middleware,
// or an anonymous requester when the request carried no valid token.
func RequesterFromCtx(c *fiber.Ctx) models.Requester {
	if r, ok := c.Locals("requester").(models.Requester); ok {
		return r
	}
	return models.Requester{Caps: models.CapabilitySet{}}
}

// AuthRequired is a middleware that enforces authentication for protected routes.
// On success it stores the user ID and the requester's capability set in locals.
func AuthRequired(c *fiber.Ctx) error {
	requester, err := parseBearer(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Locals("userID", requester.UserID)
	c.Locals("requester", requester)
	return c.Next()
}

// OptionalAuth populates the requester when a valid token is present but
// lets anonymous requests through with an empty capability set.
func OptionalAuth(c *fiber.Ctx) error {
	if c.Get("Authorization") == "" {
		c.Locals("requester", models.Requester{Caps: models.CapabilitySet{}})
		return c.Next()
	}

	requester, err := parseBearer(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Locals("userID", requester.UserID)
	c.Locals("requester", requester)
	return c.Next()
}

func parseBearer(c *fiber.Ctx) (models.Requester, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return models.Requester{}, fiber.NewError(fiber.StatusUnauthorized, "Authorization header required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return models.Requester{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return models.Requester{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Requester{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	// User ID lives in the "sub" claim (subject claim per RFC 7519).
	subClaim, ok := claims["sub"]
	if !ok {
		return models.Requester{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid token structure - missing subject")
	}
	subStr, ok := subClaim.(string)
	if !ok {
		return models.Requester{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid token subject type")
	}
	userIDVal, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil {
		return models.Requester{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}

	caps := models.CapabilitySet{}
	if rawCaps, ok := claims["caps"].([]interface{}); ok {
		for _, rc := range rawCaps {
			if s, ok := rc.(string); ok && s != "" {
				caps[models.Capability(s)] = struct{}{}
			}
		}
	}

	return models.Requester{UserID: uint(userIDVal), Caps: caps}, nil
}
