package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWTIdentity reads an optional bearer token issued by the auth service
// and stores the verified identity in Locals. Requests without a token
// pass through anonymous; handlers then fall back to the identity pair
// in the request body.
func JWTIdentity(secret string) fiber.Handler {
	type identityClaims struct {
		UID  string `json:"uid,omitempty"`
		Name string `json:"name,omitempty"`
		jwt.RegisteredClaims
	}

	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}
		if secret == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing JWT_SECRET")
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims identityClaims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, fiber.ErrUnauthorized
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		uid := claims.UID
		if uid == "" {
			uid = claims.Subject
		}
		if uid == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing uid/sub")
		}

		c.Locals("user_id", uid)
		if claims.Name != "" {
			c.Locals("user_name", claims.Name)
		}
		return c.Next()
	}
}
