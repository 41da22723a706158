package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the closed set of authorization roles a user can hold.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authentication carries the credential material for a user. All fields are
// excluded from JSON and from default read projections; repositories only
// load them when the caller explicitly asks.
type Authentication struct {
	Password     string `json:"-" bson:"password"`
	Salt         string `json:"-" bson:"salt"`
	SessionToken string `json:"-" bson:"sessionToken,omitempty"`
	Role         Role   `json:"-" bson:"role"`
}

// User is an account holder. Username and email are unique across all users.
type User struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username       string             `json:"username" bson:"username"`
	Email          string             `json:"email" bson:"email"`
	Authentication Authentication     `json:"-" bson:"authentication"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Authentication.Role == RoleAdmin
}
