package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Roles carried in the token's "role" claim.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

const tokenLifetime = 24 * time.Hour

// TokenService mints and verifies HS256 bearer tokens.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Generate mints a token for the given user id and role.
func (s *TokenService) Generate(userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies a token string and returns the identity it carries.
func (s *TokenService) Parse(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil || claims["role"] == nil {
		return Identity{}, fmt.Errorf("invalid token payload")
	}

	// JWT numeric claims decode as float64.
	userID, ok := claims["userId"].(float64)
	if !ok {
		return Identity{}, fmt.Errorf("invalid token payload")
	}
	role, ok := claims["role"].(string)
	if !ok || (role != RoleStudent && role != RoleInstructor) {
		return Identity{}, fmt.Errorf("invalid token payload")
	}

	return Identity{UserID: uint(userID), Role: role}, nil
}
