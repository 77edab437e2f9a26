package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/colorwalk/colorwalk-backend-go/pkg/response"
)

const (
	ctxUserIDKey = "auth_user_id"
	ctxEmailKey  = "auth_email"
)

// Auth validates the Bearer token and stores the caller's identity in the
// request context
func Auth(jwtSecret string) gin.HandlerFunc {
	secret := []byte(jwtSecret)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "Missing bearer token")
			c.Abort()
			return
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Unauthorized(c, "Invalid token claims")
			c.Abort()
			return
		}

		// Numeric claims decode as float64
		if id, ok := claims["user_id"].(float64); ok {
			c.Set(ctxUserIDKey, int64(id))
		}
		if email, ok := claims["email"].(string); ok {
			c.Set(ctxEmailKey, email)
		}

		c.Next()
	}
}

// UserID returns the authenticated user's ID, or 0 when the request is
// anonymous
func UserID(c *gin.Context) int64 {
	if v, ok := c.Get(ctxUserIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// UserEmail returns the authenticated user's email, or "" when anonymous
func UserEmail(c *gin.Context) string {
	if v, ok := c.Get(ctxEmailKey); ok {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}
