package service

import (
	"context"

	"github.com/mqsalx/user-management-api/models"
)

// AuthService verifies submitted credentials and owns the access-token
// lifecycle.
type AuthService interface {
	// Authenticate verifies the email/password pair against the stored
	// account record. There is no partial success: it returns either the
	// matched account or an error.
	Authenticate(ctx context.Context, email, password string) (models.User, error)

	// CreateToken mints a signed, time-bound token for the given account.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and resolves the account
	// identifier embedded in it.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService implements the user-management use cases behind the
// authenticated part of the API.
type UserService interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	FindUser(ctx context.Context, userID int64) (models.User, error)
	FindUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}
