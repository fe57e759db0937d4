package models

import "time"

// UserStatus is the lifecycle state of a user account.
type UserStatus string

const (
	StatusActive    UserStatus = "active"
	StatusInactive  UserStatus = "inactive"
	StatusSuspended UserStatus = "suspended"
)

// Valid reports whether s is one of the known account statuses.
func (s UserStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}

// UserRole is the authorization role assigned to a user account.
// Super administrators are managed out of band and never appear
// in the user-management API surface.
type UserRole string

const (
	RoleDefault            UserRole = "default"
	RoleAdministrator      UserRole = "administrator"
	RoleSuperAdministrator UserRole = "super_administrator"
)

// User represents an account entity used for authentication and
// user management. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is embedded as the JWT subject claim on login and used
	// at the persistence layer.
	UserID int64 `json:"user_id"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash is the bcrypt digest of the account password.
	// It is never serialized and never leaves the server process.
	PasswordHash string `json:"-"`

	// Status is the lifecycle state of the account.
	Status UserStatus `json:"status"`

	// Role is the authorization role of the account.
	Role UserRole `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate carries a partial update of a user record. Only non-nil
// fields are applied; the set of updatable fields is fixed here so that
// unknown or forbidden attributes can never be patched onto a record.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Status   *UserStatus
}

// Empty reports whether the update carries no fields at all.
func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Password == nil && u.Status == nil
}
