// Package cryptox provides the password hashing primitives used by the
// authentication service.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost is the bcrypt work factor applied to new passwords.
const DefaultHashCost = 10

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = errors.New("password cannot be empty")

// HashPassword produces a salted bcrypt hash of the password using
// DefaultHashCost. The salt is generated by bcrypt and embedded in the
// returned hash string.
func HashPassword(password []byte) (string, error) {
	if len(password) == 0 {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword(password, DefaultHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored hash.
// A mismatch is not an error; errors indicate a malformed hash.
func CheckPassword(hash string, password []byte) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), password)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
