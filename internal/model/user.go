package model

import "time"

// Role is the closed set of user roles.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole coerces arbitrary input to a valid role. Anything that is not
// exactly ADMIN becomes USER, matching how registration treats the field.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

// User represents a user in the system
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the projection of a User safe to return to clients.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// PublicUserWithCreatedAt extends the public projection with the creation
// timestamp, used by /me and the admin listing.
type PublicUserWithCreatedAt struct {
	PublicUser
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the client-safe projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// PublicWithCreatedAt returns the client-safe projection including createdAt.
func (u *User) PublicWithCreatedAt() PublicUserWithCreatedAt {
	return PublicUserWithCreatedAt{PublicUser: u.Public(), CreatedAt: u.CreatedAt}
}

// RegisterRequest is the body of POST /api/auth/register
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
