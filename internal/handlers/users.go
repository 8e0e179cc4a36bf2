package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/taskboard/taskboard-api/internal/dto"
	apierrors "github.com/taskboard/taskboard-api/internal/errors"
	"github.com/taskboard/taskboard-api/internal/middleware"
	"github.com/taskboard/taskboard-api/internal/policy"
	"github.com/taskboard/taskboard-api/internal/services"
)

// UserHandler coordinates administrator user-management handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers returns every user.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		apierrors.InternalError(c, "Failed to load users")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": dto.ToUserDTOs(users)})
}

// CreateUser creates a team member.
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(services.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// DeleteUser deletes a user. Administrators cannot delete themselves.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.DeleteUser(actor, targetID); err != nil {
		switch {
		case errors.Is(err, policy.ErrSelfDelete):
			apierrors.InvalidOperation(c, "You cannot delete yourself")
		case errors.Is(err, policy.ErrAdminRequired):
			apierrors.Forbidden(c, "administrator role required")
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to delete user")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
