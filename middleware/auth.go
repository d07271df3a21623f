package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bistro/api/jwtservice"
	"bistro/api/models"
	"bistro/api/store"
)

// Context keys set by VerifyToken for downstream handlers.
const (
	ClaimsKey = "claims"
	EmailKey  = "email"
)

// VerifyToken rejects requests without a valid bearer token and attaches the
// decoded claims to the request context.
func VerifyToken(jwtSvc *jwtservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "forbidden access"})
			return
		}
		parts := strings.Fields(header)
		if len(parts) != 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "forbidden access"})
			return
		}
		claims, err := jwtSvc.ValidateJWT(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "forbidden access"})
			return
		}
		email, _ := claims["email"].(string)
		c.Set(ClaimsKey, claims)
		c.Set(EmailKey, email)
		c.Next()
	}
}

// VerifyAdmin checks the stored role of the account named by the verified
// claims. Must run after VerifyToken; it trusts the email in the context
// only because the token signature already proved it.
func VerifyAdmin(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(EmailKey)
		user, err := users.FindByEmail(c.Request.Context(), email)
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		if user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Next()
	}
}
