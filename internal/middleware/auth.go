// Package middleware holds the gin middleware shared across routes.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sharesurplus-backend/internal/token"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

// claimsKey is the gin context key the verified claims are stored under.
const claimsKey = "identityClaims"

// RequireUser verifies the session cookie and stashes the decoded claims in
// the request context. Requests without a valid token are rejected with 401
// before any handler runs.
func RequireUser(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(CookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		claims, err := tokens.Parse(cookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the claims RequireUser stored for this request.
func ClaimsFrom(c *gin.Context) (*token.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*token.Claims)
	return claims, ok
}
