package middleware

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hirebase/job-board-api/internal/constants"
	apierrors "github.com/hirebase/job-board-api/internal/errors"
	"github.com/hirebase/job-board-api/internal/services"
)

// RequireAuth verifies the bearer token and stores the user ID in context.
// The rejection reason (malformed, bad signature, expired) is logged but the
// client always sees the same unauthenticated response.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			apierrors.Unauthenticated(c, "")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Printf("auth: rejected token: %v", err)
			apierrors.Unauthenticated(c, "")
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
