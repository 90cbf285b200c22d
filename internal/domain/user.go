package domain

// Role is a user role.
type Role string

// List of roles
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a registered account.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
}
