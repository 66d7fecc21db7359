package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextUserID is the gin context key under which the authenticated
// user's ID is stored.
const ContextUserID = "userID"

// AuthRequired returns a Gin middleware function that validates JWT tokens
// and restricts access to authenticated users only. The signing secret is
// injected at construction instead of being read from the environment per
// request. Both "Bearer <token>" and a bare token in the Authorization
// header are accepted.
func AuthRequired(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access denied, token missing"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Parse and verify JWT signature and expiry
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Check signing algorithm (only HMAC allowed)
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			// Forged, malformed and expired tokens all get the same answer
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		// 3. Extract claims (payload)
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(ContextUserID, uint(sub))

		// 4. Pass control to the next handler
		c.Next()
	}
}
