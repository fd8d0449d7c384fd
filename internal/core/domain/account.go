package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account models a registered identity. The password hash is opaque to every
// layer except the hasher and is never serialised into a response.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
