// Package auth issues and verifies the signed bearer tokens handed to the
// mobile client. Tokens are HS256 JWTs carrying the login identifier as
// subject. There is no revocation: once issued, a token stays valid until
// its expiry.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/puptrack/puptrack/internal/common"
)

// Claims carries the standard registered claims; the login identifier
// (normally the account email) travels in the Subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken signs a token for subject, valid for validityDuration from now.
func GenerateToken(subject string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetSubjectFromToken verifies tokenString against secretKey and returns the
// subject claim. Failures map to the common sentinels: ErrTokenExpired,
// ErrTokenInvalidSignature, ErrTokenMalformed, or ErrInvalidToken.
func GetSubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalidSignature
		}
		return secretKey, nil
	})
	if err != nil {
		return "", mapTokenError(err)
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return common.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return common.ErrTokenInvalidSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return common.ErrTokenMalformed
	default:
		return common.ErrInvalidToken
	}
}
