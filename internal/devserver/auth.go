package devserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"parceldash/internal/config"
	"parceldash/internal/domain"
)

// Claims are the JWT claims minted for dashboard sessions.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// JWTService mints and validates session tokens for the fixture server.
type JWTService struct {
	secret []byte
	expiry time.Duration
}

// NewJWTService creates a JWTService from auth configuration.
func NewJWTService(cfg config.AuthConfig) *JWTService {
	return &JWTService{
		secret: []byte(cfg.JWTSecret),
		expiry: cfg.TokenExpiry,
	}
}

// GenerateToken creates a signed token for the given user.
func (s *JWTService) GenerateToken(user domain.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "parceldash-devserver",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// claimsUser rebuilds the user profile carried in token claims.
func claimsUser(claims *Claims) domain.User {
	return domain.User{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  domain.UserRole(claims.Role),
		Name:  claims.Name,
	}
}

// adminAccount is the fixture admin credential.
type adminAccount struct {
	user domain.User
	hash []byte
}

// newAdminAccount hashes the fixture password at startup.
func newAdminAccount() *adminAccount {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on invalid cost; this is a programming error.
		panic(err)
	}
	return &adminAccount{
		user: domain.User{
			ID:    "admin-1",
			Email: "admin@parceldash.dev",
			Role:  domain.UserRoleAdmin,
			Name:  "Dev Admin",
		},
		hash: hash,
	}
}

// check verifies the fixture credentials.
func (a *adminAccount) check(email, password string) bool {
	if email != a.user.Email {
		return false
	}
	return bcrypt.CompareHashAndPassword(a.hash, []byte(password)) == nil
}
