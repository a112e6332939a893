package main

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionSubject is the single shared dashboard identity. There are no user
// accounts; the login only proves knowledge of the dashboard password.
const sessionSubject = "dashboard"

// signJWT creates an HS256 token with 24h expiration.
func signJWT(secret string) (string, error) {
	claims := jwt.MapClaims{
		"sub": sessionSubject,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
		"iss": "parcelyield",
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// parseJWT validates the token and checks the subject.
func parseJWT(secret, tokenStr string) error {
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return errors.New("invalid token")
	}
	if claims, ok := tok.Claims.(jwt.MapClaims); ok {
		if sub, ok := claims["sub"].(string); ok && sub == sessionSubject {
			return nil
		}
	}
	return errors.New("no subject")
}
