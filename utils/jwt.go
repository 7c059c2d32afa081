package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenClaims holds the subset of JWT claims the client cares about.
// The token is issued and verified server-side; the client only inspects
// it to know who is signed in and when the session lapses.
type TokenClaims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// InspectToken decodes a JWT without verifying its signature and returns
// the claims relevant to session bookkeeping. Verification is the server's
// job; the client has no secret to verify with.
func InspectToken(tokenString string) (*TokenClaims, error) {
	parser := new(jwt.Parser)
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims format")
	}

	out := &TokenClaims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return out, nil
}
