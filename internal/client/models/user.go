package models

import "time"

// User is a known account. PasswordHash is a bcrypt hash and never leaves
// the accounts repository layer; the persisted session carries a User with
// the hash stripped.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	IsSeller     bool      `json:"isSeller"`
	CreatedAt    time.Time `json:"createdAt"`
	PasswordHash []byte    `json:"-"`
}

// Public returns a copy of the user without credential material, suitable
// for persisting or handing to the rendering layer.
func (u User) Public() User {
	u.PasswordHash = nil
	return u
}
