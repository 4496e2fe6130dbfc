package auth

import (
	"time"

	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	Expired(token string, now time.Time) bool
}

// JWTService inspects tokens issued by the ledger. The signing key belongs to
// the ledger, so signatures are never verified here; only the exp claim is read.
type JWTService struct{}

func (s *JWTService) Expired(token string, now time.Time) bool {
	claims := &jwt.StandardClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		// opaque tokens carry no expiry we can read
		return false
	}
	if claims.ExpiresAt == 0 {
		return false
	}
	return !claims.VerifyExpiresAt(now.Unix(), true)
}
