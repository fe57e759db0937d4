package models

// LoginRequest is the payload accepted by the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserRequest is the payload accepted when registering a new user.
// Status is optional and defaults to "active" when omitted.
type CreateUserRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Status   UserStatus `json:"status,omitempty"`
}

// UpdateUserRequest is the payload accepted when partially updating a
// user. Absent fields stay untouched; present fields replace the stored
// value. Only the fields listed here can ever be updated.
type UpdateUserRequest struct {
	Name     *string     `json:"name,omitempty"`
	Email    *string     `json:"email,omitempty"`
	Password *string     `json:"password,omitempty"`
	Status   *UserStatus `json:"status,omitempty"`
}

// Update converts the request into the persistence-layer update carrier.
func (r UpdateUserRequest) Update() UserUpdate {
	return UserUpdate{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Status:   r.Status,
	}
}
