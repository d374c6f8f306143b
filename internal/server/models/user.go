package models

import "time"

// User is one registered account. Exactly one of Email/Phone is the primary
// login identifier; both may be present. PasswordHash is empty for federated
// (Google) accounts.
type User struct {
	ID           int64
	Name         string
	Address      string
	Phone        string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// LoginIdentifier returns the identifier tokens are keyed on: the email when
// present, otherwise the phone.
func (u *User) LoginIdentifier() string {
	if u.Email != "" {
		return u.Email
	}
	return u.Phone
}
