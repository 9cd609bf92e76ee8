// Package common contains shared constants and sentinel errors used across
// Task Hub components.
package common

// AuthorizationHeader is the HTTP header carrying the session token.
const AuthorizationHeader = "Authorization"

// BearerPrefix precedes the token value in the Authorization header.
const BearerPrefix = "Bearer "
