package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mqsalx/user-management-api/internal/logger"
	"github.com/mqsalx/user-management-api/internal/service"
	"github.com/mqsalx/user-management-api/internal/store"
	"github.com/mqsalx/user-management-api/internal/utils"
	"github.com/mqsalx/user-management-api/models"
)

// login verifies submitted credentials and, on success, responds with a
// freshly minted bearer token.
//
// There is no partial success: either a valid token is issued or the
// request is rejected through the error mapper. A storage failure is the
// only non-401 rejection on this path.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSONBody)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid email or password")
		case errors.Is(err, store.ErrStorageUnavailable):
			log.Err(err).Msg("storage unavailable during login")
		default:
			log.Err(err).Msg("unexpected error occurred during login")
		}
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}, http.StatusOK)
}
