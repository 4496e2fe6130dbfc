package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func signed(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("ledger-secret"))
	assert.NoError(t, err)
	return token
}

func TestExpired(t *testing.T) {
	jwtService := &JWTService{}
	now := time.Now()

	tests := []struct {
		name     string
		setup    func() string
		expected bool
	}{
		{
			name: "Valid token",
			setup: func() string {
				return signed(t, jwt.StandardClaims{ExpiresAt: now.Add(time.Hour).Unix()})
			},
			expected: false,
		},
		{
			name: "Expired token",
			setup: func() string {
				return signed(t, jwt.StandardClaims{ExpiresAt: now.Add(-time.Hour).Unix()})
			},
			expected: true,
		},
		{
			name: "Token without expiry",
			setup: func() string {
				return signed(t, jwt.StandardClaims{Subject: "author-1"})
			},
			expected: false,
		},
		{
			name:     "Opaque token",
			setup:    func() string { return "not-a-jwt" },
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, jwtService.Expired(tt.setup(), now))
		})
	}
}
