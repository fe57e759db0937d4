package models

import (
	"net/http"
	"strconv"
)

// ErrorResponse is the uniform error envelope returned for every
// rejected or erroring request, regardless of where in the chain the
// failure originated.
//
// StatusCode carries the HTTP status code rendered as a string
// (e.g. "401"), StatusName the standard reason phrase
// (e.g. "Unauthorized").
type ErrorResponse struct {
	StatusCode string `json:"status_code"`
	StatusName string `json:"status_name"`
	Message    string `json:"message"`
}

// NewErrorResponse builds the envelope for the given status code and
// client-visible message.
func NewErrorResponse(statusCode int, message string) ErrorResponse {
	return ErrorResponse{
		StatusCode: strconv.Itoa(statusCode),
		StatusName: http.StatusText(statusCode),
		Message:    message,
	}
}

// LoginResponse is returned by the login endpoint on success.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse is the public projection of a user record returned by
// the user-management endpoints.
type UserResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// NewUserResponse projects a user record into its public shape.
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		UserID: strconv.FormatInt(u.UserID, 10),
		Name:   u.Name,
		Email:  u.Email,
	}
}

// NewUserResponseList projects a slice of user records.
func NewUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, NewUserResponse(u))
	}
	return responses
}
