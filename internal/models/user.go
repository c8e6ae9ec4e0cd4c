// Package models defines the application's domain records: users and events.
package models

// User is the authenticated identity for the current session. It is owned
// by the session service; events only carry the ID as CreatedBy.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
