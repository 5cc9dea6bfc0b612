package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken(uuid.New())
	assert.NoError(t, err)

	// Flip a byte in the signature segment
	parts := strings.Split(token, ".")
	assert.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = service.ValidateToken(tampered)
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-one").GenerateToken(uuid.New())
	assert.NoError(t, err)

	_, err = NewJWTService("secret-two").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	service := NewJWTService("test-secret")

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = service.ValidateToken(expired)
	assert.Error(t, err)
}
