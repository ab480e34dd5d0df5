// Package models defines the client-side view of the InvoTrack API entities.
// All identity, validation and referential integrity is owned by the server;
// these types only mirror what the API returns.
package models

// User is the authenticated account's profile.
type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
}
