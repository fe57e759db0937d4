package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mqsalx/user-management-api/internal/logger"
	"github.com/mqsalx/user-management-api/internal/mock"
	"github.com/mqsalx/user-management-api/internal/store"
	"github.com/mqsalx/user-management-api/internal/utils"
	"github.com/mqsalx/user-management-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newUserServiceWithMock(t *testing.T) (UserService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewUserService(repo, logger.Nop()), repo
}

func validCreateRequest() models.CreateUserRequest {
	return models.CreateUserRequest{
		Name:     "Alice Johnson",
		Email:    "alice@example.com",
		Password: "s3cret-password",
	}
}

func strPtr(s string) *string { return &s }

// ─────────────────────────────────────────────
// CreateUser
// ─────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	svc, repo := newUserServiceWithMock(t)
	req := validCreateRequest()

	var persisted models.User
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			persisted = u
			u.UserID = 1
			return u, nil
		})

	created, err := svc.CreateUser(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, req.Email, persisted.Email)
	assert.Equal(t, req.Name, persisted.Name)

	// The plaintext never reaches the repository.
	assert.NotEqual(t, req.Password, persisted.PasswordHash)
	assert.NoError(t, utils.ComparePasswordAndHash(req.Password, persisted.PasswordHash))
}

func TestCreateUser_DefaultsStatusToActive(t *testing.T) {
	svc, repo := newUserServiceWithMock(t)
	req := validCreateRequest()
	req.Status = ""

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, models.StatusActive, u.Status)
			return u, nil
		})

	_, err := svc.CreateUser(context.Background(), req)
	require.NoError(t, err)
}

func TestCreateUser_RoleIsAlwaysDefault(t *testing.T) {
	svc, repo := newUserServiceWithMock(t)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, models.RoleDefault, u.Role)
			return u, nil
		})

	_, err := svc.CreateUser(context.Background(), validCreateRequest())
	require.NoError(t, err)
}

func TestCreateUser_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreateUserRequest)
	}{
		{"empty name", func(r *models.CreateUserRequest) { r.Name = "" }},
		{"name too short", func(r *models.CreateUserRequest) { r.Name = "Al" }},
		{"empty email", func(r *models.CreateUserRequest) { r.Email = "" }},
		{"malformed email", func(r *models.CreateUserRequest) { r.Email = "not-an-email" }},
		{"empty password", func(r *models.CreateUserRequest) { r.Password = "" }},
		{"password too short", func(r *models.CreateUserRequest) { r.Password = "short" }},
		{"unknown status", func(r *models.CreateUserRequest) { r.Status = "frozen" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newUserServiceWithMock(t)
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.CreateUser(context.Background(), req)

			// The repository must never be reached on an invalid payload.
			assert.ErrorIs(t, err, ErrInvalidUserData)
		})
	}
}

func TestCreateUser_EmailAlreadyExists(t *testing.T) {
	svc, repo := newUserServiceWithMock(t)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.CreateUser(context.Background(), validCreateRequest())

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// FindUser / FindUsers
// ─────────────────────────────────────────────

func TestFindUser_Success(t *testing.T) {
	svc, repo := newUserServiceWithMock(t)
	want := models.User{UserID: 5, Email: "bob@example.com", Name: "Bob"}

	repo.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(want, nil)

	got, err := svc.FindUser(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindUser_NotFound(t *testing.T) {
	svc, repo := newUserServiceWithMock(t)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(404)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.FindUser(context.Background(), 404)

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestFindUsers_Success(t *testing.T) {
	svc, repo := newUserServiceWithMock(t)
	want := []models.User{{UserID: 1}, {UserID: 2}}

	repo.EXPECT().FindUsers(gomock.Any()).Return(want, nil)

	got, err := svc.FindUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindUsers_Empty(t *testing.T) {
	svc, repo := newUserServiceWithMock(t)

	repo.EXPECT().FindUsers(gomock.Any()).Return([]models.User{}, nil)

	got, err := svc.FindUsers(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

// ─────────────────────────────────────────────
// UpdateUser
// ─────────────────────────────────────────────

func TestUpdateUser_PartialFields(t *testing.T) {
	svc, repo := newUserServiceWithMock(t)
	req := models.UpdateUserRequest{Name: strPtr("New Name")}

	repo.EXPECT().
		UpdateUser(gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, update models.UserUpdate) (models.User, error) {
			require.NotNil(t, update.Name)
			assert.Equal(t, "New Name", *update.Name)
			assert.Nil(t, update.Email)
			assert.Nil(t, update.Password)
			assert.Nil(t, update.Status)
			return models.User{UserID: 3, Name: *update.Name}, nil
		})

	updated, err := svc.UpdateUser(context.Background(), 3, req)

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
}

func TestUpdateUser_PasswordIsHashed(t *testing.T) {
	svc, repo := newUserServiceWithMock(t)
	req := models.UpdateUserRequest{Password: strPtr("brand-new-password")}

	repo.EXPECT().
		UpdateUser(gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, update models.UserUpdate) (models.User, error) {
			require.NotNil(t, update.Password)
			assert.NotEqual(t, "brand-new-password", *update.Password)
			assert.NoError(t, utils.ComparePasswordAndHash("brand-new-password", *update.Password))
			return models.User{UserID: 3}, nil
		})

	_, err := svc.UpdateUser(context.Background(), 3, req)
	require.NoError(t, err)
}

func TestUpdateUser_EmptyRequest(t *testing.T) {
	svc, _ := newUserServiceWithMock(t)

	_, err := svc.UpdateUser(context.Background(), 3, models.UpdateUserRequest{})

	assert.ErrorIs(t, err, ErrInvalidUserData)
}

func TestUpdateUser_ValidationFailures(t *testing.T) {
	suspended := models.UserStatus("frozen")

	tests := []struct {
		name string
		req  models.UpdateUserRequest
	}{
		{"name too short", models.UpdateUserRequest{Name: strPtr("Al")}},
		{"malformed email", models.UpdateUserRequest{Email: strPtr("not-an-email")}},
		{"password too short", models.UpdateUserRequest{Password: strPtr("short")}},
		{"unknown status", models.UpdateUserRequest{Status: &suspended}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newUserServiceWithMock(t)

			_, err := svc.UpdateUser(context.Background(), 3, tt.req)

			assert.ErrorIs(t, err, ErrInvalidUserData)
		})
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc, repo := newUserServiceWithMock(t)

	repo.EXPECT().
		UpdateUser(gomock.Any(), int64(404), gomock.Any()).
		Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.UpdateUser(context.Background(), 404, models.UpdateUserRequest{Name: strPtr("Somebody")})

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

// ─────────────────────────────────────────────
// DeleteUser
// ─────────────────────────────────────────────

func TestDeleteUser_Success(t *testing.T) {
	svc, repo := newUserServiceWithMock(t)

	repo.EXPECT().DeleteUser(gomock.Any(), int64(9)).Return(nil)

	err := svc.DeleteUser(context.Background(), 9)

	require.NoError(t, err)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, repo := newUserServiceWithMock(t)

	repo.EXPECT().DeleteUser(gomock.Any(), int64(404)).Return(store.ErrUserNotFound)

	err := svc.DeleteUser(context.Background(), 404)

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestDeleteUser_StorageUnavailable(t *testing.T) {
	svc, repo := newUserServiceWithMock(t)
	wrapped := errors.Join(store.ErrStorageUnavailable, errors.New("dial tcp: connection refused"))

	repo.EXPECT().DeleteUser(gomock.Any(), int64(9)).Return(wrapped)

	err := svc.DeleteUser(context.Background(), 9)

	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}
