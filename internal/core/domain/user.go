package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models a registered community member.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AuthorRef is the projection of a user embedded in question and answer
// reads: id and username only, never email or credentials.
type AuthorRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Ref returns the embeddable projection of the user.
func (u *User) Ref() AuthorRef {
	return AuthorRef{ID: u.ID, Username: u.Username}
}
