package middleware

import (
	"github.com/gofiber/fiber/v2"

	"favorites/internal/apperror"
)

// ActingUserKey is the fiber locals key holding the principal's user ID.
const ActingUserKey = "user_id"

// ActingUser stores userID in the request locals as the principal of every
// favorite mutation. There is no authentication: all requests act as the
// same configured user.
func ActingUser(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(ActingUserKey, userID)
		return c.Next()
	}
}

// Principal returns the user ID placed in the locals by ActingUser.
func Principal(c *fiber.Ctx) (uint, error) {
	userID, ok := c.Locals(ActingUserKey).(uint)
	if !ok || userID == 0 {
		return 0, apperror.New(fiber.StatusInternalServerError, "no acting user configured for this route")
	}
	return userID, nil
}
