package models

// User represents a row in the users table.
//
// UserID is assigned by the store when not supplied, but the trade-creation
// flow always carries a caller-chosen id.
type User struct {
	UserID int64  `json:"userId" example:"1"`
	Name   string `json:"name" example:"David"`
}
