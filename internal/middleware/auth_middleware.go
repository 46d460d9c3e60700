package middleware

import (
	"strings"

	"go-stockdesk/internal/model"
	"go-stockdesk/internal/policy"
	"go-stockdesk/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the bearer token and sets user identity in the
// request context.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("user_id", claims.UserID.String())
		c.Locals("user_email", claims.Email)
		c.Locals("user_name", claims.Name)
		c.Locals("user_role", claims.Role)

		return c.Next()
	}
}

// RequireCapability asks the policy whether the authenticated role may
// perform the capability. New roles only need a policy table entry.
func RequireCapability(p policy.Policy, capability policy.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(model.Role)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No role found"})
		}

		if !p.Allows(role, capability) {
			return c.Status(403).JSON(fiber.Map{
				"error": "Forbidden: requires '" + string(capability) + "' capability",
			})
		}

		return c.Next()
	}
}
