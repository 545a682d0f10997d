package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Generate(42, RoleStudent)
	require.NoError(t, err)

	identity, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), identity.UserID)
	assert.Equal(t, RoleStudent, identity.Role)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").Generate(1, RoleInstructor)
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").Parse(token)
	assert.Error(t, err)
}

func TestTokenRejectsExpired(t *testing.T) {
	secret := "test-secret"
	claims := jwt.MapClaims{
		"userId": 1,
		"role":   RoleStudent,
		"iat":    time.Now().Add(-48 * time.Hour).Unix(),
		"exp":    time.Now().Add(-24 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenService(secret).Parse(expired)
	assert.Error(t, err)
}

func TestTokenRejectsUnknownRole(t *testing.T) {
	secret := "test-secret"
	claims := jwt.MapClaims{
		"userId": 1,
		"role":   "admin",
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenService(secret).Parse(token)
	assert.Error(t, err)
}

func TestTokenRejectsGarbage(t *testing.T) {
	_, err := NewTokenService("test-secret").Parse("not-a-token")
	assert.Error(t, err)
}

func TestIdentityRoleChecks(t *testing.T) {
	student := Identity{UserID: 7, Role: RoleStudent}
	instructor := Identity{UserID: 9, Role: RoleInstructor}

	id, err := student.AsStudent()
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)

	_, err = student.AsInstructor()
	assert.ErrorIs(t, err, ErrNotInstructor)

	id, err = instructor.AsInstructor()
	require.NoError(t, err)
	assert.Equal(t, uint(9), id)

	_, err = instructor.AsStudent()
	assert.ErrorIs(t, err, ErrNotStudent)

	assert.True(t, instructor.IsInstructor())
	assert.False(t, student.IsInstructor())
}
