package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mqsalx/user-management-api/internal/logger"
	"github.com/mqsalx/user-management-api/internal/store"
	"github.com/mqsalx/user-management-api/internal/utils"
	"github.com/mqsalx/user-management-api/models"
)

// userIDFromRequest parses the {userID} route parameter. A non-numeric
// identifier is reported as a missing user rather than a distinct error,
// matching the lookup behaviour for unknown ids.
func userIDFromRequest(r *http.Request) (int64, error) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		return 0, store.ErrUserNotFound
	}
	return userID, nil
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSONBody)
		return
	}

	created, err := h.services.UserService.CreateUser(ctx, req)
	if err != nil {
		log.Err(err).Msg("user creation failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewUserResponse(created), http.StatusCreated)
}

func (h *Handler) findUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.FindUsers(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("user listing failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewUserResponseList(users), http.StatusOK)
}

func (h *Handler) findUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	found, err := h.services.UserService.FindUser(r.Context(), userID)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("id", userID).Msg("user lookup failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewUserResponse(found), http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSONBody)
		return
	}

	updated, err := h.services.UserService.UpdateUser(ctx, userID, req)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user update failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewUserResponse(updated), http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		logger.FromRequest(r).Err(err).Int64("id", userID).Msg("user deletion failed")
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
