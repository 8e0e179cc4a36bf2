package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/repository"
	"github.com/taskboard/taskboard-api/internal/services"
)

func setupAuthTest(t *testing.T) (*gin.Engine, *services.TokenService, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.Close()
	})

	tokens, err := services.NewTokenService("test-secret")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", RequireAuth(tokens, repository.NewUserRepository(db)), func(c *gin.Context) {
		user, ok := GetUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})

	return router, tokens, db
}

func performAuthRequest(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	router, _, _ := setupAuthTest(t)

	w := performAuthRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestRequireAuth_NotBearerScheme(t *testing.T) {
	router, _, _ := setupAuthTest(t)

	w := performAuthRequest(router, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_MalformedToken(t *testing.T) {
	router, _, _ := setupAuthTest(t)

	w := performAuthRequest(router, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_DeletedIdentityRejected(t *testing.T) {
	router, tokens, db := setupAuthTest(t)

	user := &models.User{
		Name:         "Ghost",
		Email:        "ghost@example.com",
		PasswordHash: "hashedpassword",
		Role:         models.RoleTeamMember,
	}
	require.NoError(t, db.Create(user).Error)

	token, err := tokens.Issue(user)
	require.NoError(t, err)

	// The token is still unexpired, but its subject is gone.
	require.NoError(t, db.Delete(user).Error)

	w := performAuthRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	router, tokens, db := setupAuthTest(t)

	user := &models.User{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hashedpassword",
		Role:         models.RoleTeamMember,
	}
	require.NoError(t, db.Create(user).Error)

	token, err := tokens.Issue(user)
	require.NoError(t, err)

	w := performAuthRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")
}
