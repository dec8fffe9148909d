// Package auth issues and verifies the bearer tokens used by the HTTP API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	apperrors "github.com/mindmeal/mindmeal-cli/internal/errors"
)

const issuer = "mindmeal"

var (
	ErrTokenExpired = apperrors.New(apperrors.ErrorTypeAuth, "TOKEN_EXPIRED", "token has expired")
	ErrTokenInvalid = apperrors.New(apperrors.ErrorTypeAuth, "TOKEN_INVALID", "token is invalid")
)

type userClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, fmt.Errorf("jwt secret must be at least 16 characters")
	}
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs an HS256 token for the user.
func (s *TokenService) Issue(userID, email string) (string, time.Time, error) {
	now := s.now()
	expires := now.Add(s.ttl)
	claims := userClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}

func (s *TokenService) keyFunc(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return s.secret, nil
}

// UserID validates token and returns the user id it was issued for.
func (s *TokenService) UserID(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &userClaims{}, s.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	claims, ok := parsed.Claims.(*userClaims)
	if !ok || !parsed.Valid || claims.Issuer != issuer || claims.UserID == "" {
		return "", ErrTokenInvalid
	}
	return claims.UserID, nil
}
