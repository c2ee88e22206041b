package users

import "time"

// User is a stored credential record. Email is the unique identifier,
// kept case-sensitive exactly as submitted. PasswordHash is a bcrypt hash
// (per-record random salt, fixed cost) and must never leave the server.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile is the sanitized view of a User returned to clients.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile returns the client-facing view of the user.
func (u *User) Profile() *Profile {
	return &Profile{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
