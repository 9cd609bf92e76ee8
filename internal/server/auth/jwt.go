// Package auth implements the session token protocol: compact, expiring,
// HS256-signed JWTs asserting user identity.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskhub/taskhub/internal/common"
)

// Claims carries the standard registered claims plus the identity fields
// embedded at issuance.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
}

// Identity is the decoded, verified content of a session token.
type Identity struct {
	UserID string
	Email  string
}

// GenerateToken signs a token asserting {userID, email} that expires after
// validityDuration.
func GenerateToken(userID, email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the asserted
// identity. Expired tokens yield common.ErrTokenExpired; every other
// verification failure yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return &Identity{UserID: claims.UserID, Email: claims.Email}, nil
}
