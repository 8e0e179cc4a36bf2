package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/taskboard/taskboard-api/internal/constants"
	apierrors "github.com/taskboard/taskboard-api/internal/errors"
	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/repository"
	"github.com/taskboard/taskboard-api/internal/services"
)

// RequireAuth validates the bearer token and resolves it to a stored user.
// Requests without a valid token, or whose identity no longer exists, are
// rejected before any downstream handler runs.
func RequireAuth(tokens *services.TokenService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			apierrors.Unauthorized(c, "authorization header missing")
			c.Abort()
			return
		}

		const bearer = "Bearer "
		if len(authorization) < len(bearer) || !strings.EqualFold(authorization[:len(bearer)], bearer) {
			apierrors.Unauthorized(c, "invalid authorization header")
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(authorization[len(bearer):])
		if tokenString == "" {
			apierrors.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			apierrors.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			apierrors.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// GetUser retrieves the authenticated user from the context.
func GetUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	if !ok {
		return nil, false
	}
	return user, true
}
