package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/repository"
)

func setupPolicyTest(t *testing.T) (*gorm.DB, *Policy) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Board{},
		&models.BoardMember{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, New(repository.NewBoardRepository(db))
}

func createUser(t *testing.T, db *gorm.DB, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Test User",
		Email:        "user" + string(role) + "@example.com",
		PasswordHash: "hashed",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestRequireAdmin(t *testing.T) {
	db, pol := setupPolicyTest(t)

	admin := createUser(t, db, models.RoleAdmin)
	member := createUser(t, db, models.RoleTeamMember)

	assert.NoError(t, pol.RequireAdmin(admin))
	assert.ErrorIs(t, pol.RequireAdmin(member), ErrAdminRequired)
}

func TestAuthorizeBoard_AdminBypassesMembership(t *testing.T) {
	db, pol := setupPolicyTest(t)

	admin := createUser(t, db, models.RoleAdmin)
	board := &models.Board{Name: "Sprint 1", CreatedByID: admin.ID}
	require.NoError(t, db.Create(board).Error)

	got, err := pol.AuthorizeBoard(board.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, board.ID, got.ID)
}

func TestAuthorizeBoard_MemberAllowed(t *testing.T) {
	db, pol := setupPolicyTest(t)

	admin := createUser(t, db, models.RoleAdmin)
	member := createUser(t, db, models.RoleTeamMember)
	board := &models.Board{Name: "Sprint 1", CreatedByID: admin.ID}
	require.NoError(t, db.Create(board).Error)
	require.NoError(t, db.Create(&models.BoardMember{BoardID: board.ID, UserID: member.ID}).Error)

	_, err := pol.AuthorizeBoard(board.ID, member)
	assert.NoError(t, err)
}

func TestAuthorizeBoard_NonMemberForbidden(t *testing.T) {
	db, pol := setupPolicyTest(t)

	admin := createUser(t, db, models.RoleAdmin)
	outsider := createUser(t, db, models.RoleTeamMember)
	board := &models.Board{Name: "Sprint 1", CreatedByID: admin.ID}
	require.NoError(t, db.Create(board).Error)

	_, err := pol.AuthorizeBoard(board.ID, outsider)
	assert.ErrorIs(t, err, ErrNotBoardMember)
}

func TestAuthorizeBoard_MissingBoardIsNotFoundBeforeMembership(t *testing.T) {
	db, pol := setupPolicyTest(t)

	// A non-member must still get not-found for a board that does not exist,
	// never forbidden.
	outsider := createUser(t, db, models.RoleTeamMember)

	_, err := pol.AuthorizeBoard(9999, outsider)
	assert.ErrorIs(t, err, ErrBoardNotFound)
}

func TestCanDeleteUser(t *testing.T) {
	db, pol := setupPolicyTest(t)

	admin := createUser(t, db, models.RoleAdmin)
	member := createUser(t, db, models.RoleTeamMember)

	assert.NoError(t, pol.CanDeleteUser(admin, member.ID))
	assert.ErrorIs(t, pol.CanDeleteUser(admin, admin.ID), ErrSelfDelete)
	assert.ErrorIs(t, pol.CanDeleteUser(member, admin.ID), ErrAdminRequired)
}
