// Package models defines the persisted entities of the Task Hub server.
package models

// User is a credential record. PasswordHash never leaves the server and is
// excluded from every JSON rendering.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
