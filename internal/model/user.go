package model

import "context"

// UserStore defines persistence operations for users.
type UserStore interface {
	Get(ctx context.Context, email string) (User, bool, error)
	Save(ctx context.Context, user User) error
	BatchGetByOwners(ctx context.Context, owners []DeviceOwner) ([]User, error)
}

// User is a person known through an external identity provider, keyed by email.
type User struct {
	Email     string
	FirstName string
	LastName  string
	Image     string
}

// Profile is the identity information returned by an OAuth provider.
type Profile struct {
	Email     string
	FirstName string
	LastName  string
	Image     string
}

// User builds a new user record from the profile.
func (p Profile) User() User {
	return User{
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Image:     p.Image,
	}
}
