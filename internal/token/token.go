// Package token issues and verifies the signed session tokens carried in the
// "token" cookie.
package token

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// TTL is the session token lifetime.
const TTL = time.Hour

// ErrInvalidToken is returned when a token fails signature, expiry, or
// claims checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity claim embedded in a session token.
type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// Service signs and verifies session tokens with a shared HMAC secret.
type Service struct {
	secret []byte
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue mints a token for the given email, valid for TTL from now.
func (s *Service) Issue(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(TTL).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies signature and expiry and returns the embedded claims.
func (s *Service) Parse(tokenStr string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
