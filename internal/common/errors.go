package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// service specific errors
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// token specific errors
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)
