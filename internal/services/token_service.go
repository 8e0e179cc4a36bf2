package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskboard/taskboard-api/internal/models"
)

// TokenTTL is how long an issued token stays valid. There is no refresh
// mechanism; expiry forces a fresh login.
const TokenTTL = 7 * 24 * time.Hour

var (
	ErrMissingSecret = errors.New("token signing secret is not configured")
	ErrInvalidToken  = errors.New("invalid or expired token")
)

// TokenService issues and verifies signed session tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService. An empty secret is rejected so the
// caller can treat it as fatal at process start rather than per request.
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// Issue produces a signed, time-boxed token bound to the user.
func (s *TokenService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(user.ID, 10),
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// TokenClaims is the identity information carried by a verified token.
type TokenClaims struct {
	UserID uint64
	Role   models.Role
}

// Verify checks the token signature and expiry and returns its claims.
func (s *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	role, _ := claims["role"].(string)

	return &TokenClaims{
		UserID: userID,
		Role:   models.Role(role),
	}, nil
}
