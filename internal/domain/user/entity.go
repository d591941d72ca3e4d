package user

import "time"

// User entity. Currently used for auth only; records reference the creating
// user by id.
type User struct {
	id           int64
	name         string
	email        Email
	passwordHash string
	role         Role
	isActive     bool
	createdAt    time.Time
}

func NewUser(name string, email Email, passwordHash string, role Role) *User {
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func (u *User) ID() int64            { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
