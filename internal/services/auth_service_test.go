package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/repository"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	userRepo repository.UserRepository
}

// SetupTest runs before each test
func (suite *AuthServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{})
	suite.Require().NoError(err)

	suite.userRepo = repository.NewUserRepository(suite.db)
}

// TearDownTest runs after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *AuthServiceTestSuite) service(allowAdmin bool) *AuthService {
	return NewAuthService(suite.userRepo, allowAdmin)
}

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	user, err := suite.service(false).Register(RegisterInput{
		Name:     "  Alice  ",
		Email:    "Alice@Example.COM",
		Password: "password123",
	})
	suite.Require().NoError(err)

	assert.Equal(suite.T(), "Alice", user.Name)
	assert.Equal(suite.T(), "alice@example.com", user.Email)
	assert.Equal(suite.T(), models.RoleTeamMember, user.Role)
	assert.NotEqual(suite.T(), "password123", user.PasswordHash)
	assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func (suite *AuthServiceTestSuite) TestRegister_Validation() {
	svc := suite.service(false)

	_, err := svc.Register(RegisterInput{Name: "  ", Email: "a@b.c", Password: "password123"})
	assert.ErrorIs(suite.T(), err, ErrNameRequired)

	_, err = svc.Register(RegisterInput{Name: "Alice", Email: "not an email", Password: "password123"})
	assert.ErrorIs(suite.T(), err, ErrInvalidEmail)

	_, err = svc.Register(RegisterInput{Name: "Alice", Email: "a@b.c", Password: "short"})
	assert.ErrorIs(suite.T(), err, ErrPasswordTooShort)
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	svc := suite.service(false)

	_, err := svc.Register(RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "password123"})
	suite.Require().NoError(err)

	// Case differs but the stored email is normalized.
	_, err = svc.Register(RegisterInput{Name: "Other", Email: "ALICE@example.com", Password: "password123"})
	assert.ErrorIs(suite.T(), err, ErrEmailTaken)
}

func (suite *AuthServiceTestSuite) TestRegister_AdminRoleGate() {
	_, err := suite.service(false).Register(RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
		Role:     "ADMIN",
	})
	assert.ErrorIs(suite.T(), err, ErrAdminRegistrationDisabled)

	user, err := suite.service(true).Register(RegisterInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "password123",
		Role:     "ADMIN",
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.RoleAdmin, user.Role)
}

func (suite *AuthServiceTestSuite) TestRegister_UnknownRoleFallsBackToTeamMember() {
	user, err := suite.service(true).Register(RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
		Role:     "SUPERUSER",
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.RoleTeamMember, user.Role)
}

func (suite *AuthServiceTestSuite) TestLogin() {
	svc := suite.service(false)

	registered, err := svc.Register(RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	suite.Require().NoError(err)

	user, err := svc.Login(LoginInput{Email: "Alice@Example.com", Password: "password123"})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), registered.ID, user.ID)

	_, err = svc.Login(LoginInput{Email: "alice@example.com", Password: "wrongpassword"})
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)

	// Unknown email yields the same error as a wrong password.
	_, err = svc.Login(LoginInput{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestGetUser_NotFound() {
	_, err := suite.service(false).GetUser(9999)
	assert.ErrorIs(suite.T(), err, ErrUserNotFound)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
