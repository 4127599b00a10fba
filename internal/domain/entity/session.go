package entity

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"shopsync/pkg/errors"
)

// Session is the client's view of the authenticated user, extracted from
// the bearer token issued by the backend. The client only reads claims; it
// never verifies the signature, verification is the backend's job on every
// request that carries the token.
type Session struct {
	UserID    string
	Email     string
	Token     string
	ExpiresAt time.Time
}

func SessionFromToken(token string) (*Session, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Unauthenticated("invalid session token", err)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		// Some issuers use uid instead of sub.
		sub, _ = claims["uid"].(string)
	}
	if sub == "" {
		return nil, errors.Unauthenticated("session token has no user identity", nil)
	}

	session := &Session{
		UserID: sub,
		Token:  token,
	}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	if exp, ok := claims["exp"].(float64); ok {
		session.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return session, nil
}

// Valid reports whether the session can still be used at the given time.
// A zero expiry means the token carries no exp claim and is trusted until
// the backend rejects it.
func (s *Session) Valid(now time.Time) bool {
	if s == nil || s.UserID == "" {
		return false
	}
	if s.ExpiresAt.IsZero() {
		return true
	}
	return now.Before(s.ExpiresAt)
}
