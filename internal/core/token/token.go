// Package token issues and validates the signed bearer tokens that carry a
// session between login and subsequent requests. Tokens are stateless: the
// payload is rebuilt from stored user fields at issue time and nothing is
// persisted, so a token stays valid until its expiry elapses.
package token

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/projecthub/projecthub/internal/core/domain"
)

const defaultTTL = 60 * time.Minute

// Claims is the decoded payload of a validated token.
type Claims struct {
	Subject int64
	Role    domain.Role
}

// Issuer mints and validates HS256-signed tokens. The signing secret and
// TTL are injected at construction, never read from package state.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token for the given user with claims
// sub (stringified user id), role, and exp (epoch seconds).
func (i *Issuer) Issue(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(user.ID, 10),
		"role": string(user.Role),
		"exp":  time.Now().Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Validate verifies signature and expiry and returns the decoded claims.
// Every failure branch collapses to domain.ErrInvalidToken; callers must
// not treat the token as authenticated on error.
func (i *Issuer) Validate(tokenString string) (*Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	role, ok := domain.ParseRole(roleStr)
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	return &Claims{Subject: id, Role: role}, nil
}
