package http

import (
	"errors"
	"net/http"

	"github.com/mqsalx/user-management-api/internal/logger"
	"github.com/mqsalx/user-management-api/internal/service"
	"github.com/mqsalx/user-management-api/internal/store"
	"github.com/mqsalx/user-management-api/internal/utils"
	"github.com/mqsalx/user-management-api/models"
)

// errorMapping fixes the HTTP status and the client-visible message for
// one known error kind. Messages are stable: clients may match on them,
// and they never carry internals from the failure site.
type errorMapping struct {
	status  int
	message string
}

// errorMap is the closed set of known error kinds. Every rejection
// produced anywhere in the service — the auth gate, the login service,
// the user use cases, the storage layer — is translated through this
// table and nowhere else.
var errorMap = map[error]errorMapping{
	ErrTokenNotProvided:           {http.StatusUnauthorized, "Token not provided!"},
	ErrInvalidJSONBody:            {http.StatusBadRequest, "Invalid JSON was passed!"},
	service.ErrTokenExpired:       {http.StatusUnauthorized, "Token expired!"},
	service.ErrTokenInvalid:       {http.StatusUnauthorized, "Invalid token!"},
	service.ErrInvalidCredentials: {http.StatusUnauthorized, "Invalid email or password!"},
	service.ErrInvalidUserData:    {http.StatusBadRequest, "Invalid user data provided!"},
	store.ErrUserNotFound:         {http.StatusNotFound, "User not found!"},
	store.ErrEmailAlreadyExists:   {http.StatusConflict, "Email already registered!"},
	store.ErrStorageUnavailable:   {http.StatusServiceUnavailable, "Service temporarily unavailable!"},
	store.ErrBuildingSQLQuery:     {http.StatusBadRequest, "Invalid user data provided!"},
}

// mapError resolves err against the known taxonomy using [errors.Is].
// Unknown errors map to HTTP 500 with the generic reason phrase; internal
// failure detail is never echoed to the client.
func mapError(err error) (int, models.ErrorResponse) {
	for target, m := range errorMap {
		if errors.Is(err, target) {
			return m.status, models.NewErrorResponse(m.status, m.message)
		}
	}

	status := http.StatusInternalServerError
	return status, models.NewErrorResponse(status, http.StatusText(status))
}

// writeError renders err as the uniform JSON error envelope. It is the
// only place in the application that formats an error response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, envelope := mapError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("path", r.URL.Path).Msg("unexpected error mapped to generic response")
	}

	utils.WriteJSON(w, envelope, status)
}
