package service

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/mqsalx/user-management-api/internal/logger"
	"github.com/mqsalx/user-management-api/internal/store"
	"github.com/mqsalx/user-management-api/internal/utils"
	"github.com/mqsalx/user-management-api/models"
)

// userService is the concrete implementation of UserService. It validates
// incoming payloads, hashes secrets, and delegates persistence to the
// user repository.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given
// UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// CreateUser validates the registration payload, hashes the password, and
// persists a new account. Omitted status defaults to "active"; the role
// is always "default" — privileged roles are never assignable through the
// API.
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Status == "" {
		req.Status = models.StatusActive
	}

	if err := validateCreateUser(req); err != nil {
		log.Err(err).Msg("invalid create user payload")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidUserData, err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		Status:       req.Status,
		Role:         models.RoleDefault,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// FindUser retrieves a single account by its internal identifier.
func (s *userService) FindUser(ctx context.Context, userID int64) (models.User, error) {
	found, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return found, nil
}

// FindUsers retrieves every visible account.
func (s *userService) FindUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.FindUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

// UpdateUser applies a partial update. Only the fields present in the
// request are touched; a request-supplied password is hashed before it
// reaches the repository.
func (s *userService) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateUpdateUser(req); err != nil {
		log.Err(err).Int64("id", userID).Msg("invalid update user payload")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidUserData, err)
	}

	update := req.Update()
	if update.Empty() {
		return models.User{}, fmt.Errorf("%w: no fields to update", ErrInvalidUserData)
	}

	if update.Password != nil {
		passwordHash, err := utils.HashPassword(*update.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("error hashing password: %w", err)
		}
		update.Password = &passwordHash
	}

	updated, err := s.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteUser removes an account by its internal identifier.
func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", userID).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}

func validateCreateUser(req models.CreateUserRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required, validation.Length(3, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required, validation.Length(8, 72)),
	); err != nil {
		return err
	}

	if !req.Status.Valid() {
		return fmt.Errorf("status %q is not valid", req.Status)
	}

	return nil
}

func validateUpdateUser(req models.UpdateUserRequest) error {
	fields := make([]*validation.FieldRules, 0, 3)
	if req.Name != nil {
		fields = append(fields, validation.Field(&req.Name, validation.Length(3, 100)))
	}
	if req.Email != nil {
		fields = append(fields, validation.Field(&req.Email, is.Email))
	}
	if req.Password != nil {
		fields = append(fields, validation.Field(&req.Password, validation.Length(8, 72)))
	}

	if len(fields) > 0 {
		if err := validation.ValidateStruct(&req, fields...); err != nil {
			return err
		}
	}

	if req.Status != nil && !req.Status.Valid() {
		return fmt.Errorf("status %q is not valid", *req.Status)
	}

	return nil
}
