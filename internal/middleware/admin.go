package middleware

import (
	"github.com/gin-gonic/gin"

	apierrors "github.com/taskboard/taskboard-api/internal/errors"
	"github.com/taskboard/taskboard-api/internal/policy"
)

// RequireAdmin enforces the role gate on administrator-only routes. It
// delegates the decision to the shared authorization policy.
func RequireAdmin(pol *policy.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUser(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if err := pol.RequireAdmin(user); err != nil {
			apierrors.Forbidden(c, "administrator role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
