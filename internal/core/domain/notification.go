package domain

import "time"

// Notification is a message delivered to a single user, currently produced
// when someone answers one of their questions.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
