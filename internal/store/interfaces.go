package store

import (
	"context"

	"github.com/mqsalx/user-management-api/models"
)

// UserRepository is the persistence boundary for user accounts. The auth
// core and the user service treat every method as potentially slow,
// fallible I/O; connectivity failures surface as [ErrStorageUnavailable].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}
