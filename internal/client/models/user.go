// Package models defines the client-side views of server entities. They
// carry public fields only; password material never reaches the client
// models.
package models

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
