package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/mqsalx/user-management-api/internal/logger"
	"github.com/mqsalx/user-management-api/internal/service"
	"github.com/mqsalx/user-management-api/internal/utils"
)

// bearerScheme is the expected "Authorization" header scheme marker,
// including the separating space.
const bearerScheme = "Bearer "

// gateDecision is the outcome of a single gate stage.
type gateDecision int

const (
	// gateContinue hands the request to the next stage of the pipeline.
	gateContinue gateDecision = iota
	// gateForward terminates the pipeline and forwards the request
	// downstream, skipping any remaining stages.
	gateForward
)

// gateState is the per-request working state threaded through the gate
// pipeline. Stages communicate exclusively through it: the header stage
// deposits the extracted token, the verification stage swaps in a request
// whose context carries the resolved identity.
type gateState struct {
	r     *http.Request
	token string
}

// gateStage is one step of the authentication pipeline. It either lets
// the pipeline continue, short-circuits with a forward decision, or
// rejects the request with an error.
type gateStage func(s *gateState) (gateDecision, error)

// auth is the authentication gate applied in front of every request.
//
// The pipeline is a fixed, ordered sequence — allow-list check, header
// check, token verification — driven by a single loop; stages are never
// reordered or skipped except by an explicit forward decision. A rejected
// request is rendered through the error mapper and the downstream handler
// never runs.
//
// Rejections:
//   - no "Authorization" header, or a non-Bearer scheme → [ErrTokenNotProvided]
//   - expired token → [service.ErrTokenExpired]
//   - malformed, tampered, or otherwise unverifiable token → [service.ErrTokenInvalid]
//
// On success the resolved user ID is stored in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
func (h *Handler) auth(next http.Handler) http.Handler {
	stages := []gateStage{
		h.gateAllowList,
		h.gateBearerToken,
		h.gateVerifyToken,
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := &gateState{r: r}

		for _, stage := range stages {
			decision, err := stage(state)
			if err != nil {
				h.rejectRequest(w, state.r, err)
				return
			}
			if decision == gateForward {
				break
			}
		}

		next.ServeHTTP(w, state.r)
	})
}

// gateAllowList forwards requests whose exact path is registered as
// unauthenticated. The allow-list is the only attribute consulted; no
// other property of the request can bypass authentication.
func (h *Handler) gateAllowList(s *gateState) (gateDecision, error) {
	if _, ok := h.allowList[s.r.URL.Path]; ok {
		return gateForward, nil
	}

	return gateContinue, nil
}

// gateBearerToken reads the "Authorization" header and extracts the raw
// token string. A missing header and a wrong scheme are indistinguishable
// to the client: both reject with [ErrTokenNotProvided].
func (h *Handler) gateBearerToken(s *gateState) (gateDecision, error) {
	authHeader := s.r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, bearerScheme) {
		return gateContinue, ErrTokenNotProvided
	}

	token := strings.TrimPrefix(authHeader, bearerScheme)
	if token == "" {
		return gateContinue, ErrTokenNotProvided
	}

	s.token = token
	return gateContinue, nil
}

// gateVerifyToken validates the extracted token and attaches the resolved
// user ID to the request context so that downstream handlers can retrieve
// it without re-parsing the token.
func (h *Handler) gateVerifyToken(s *gateState) (gateDecision, error) {
	ctx := s.r.Context()

	token, err := h.services.AuthService.ParseToken(ctx, s.token)
	if err != nil {
		return gateContinue, err
	}

	ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
	s.r = s.r.WithContext(ctx)

	return gateContinue, nil
}

// rejectRequest logs a gate rejection and renders it through the error
// mapper. An error outside the gate's own taxonomy is normalised to a
// generic 401 so that no internal failure detail can leak through an
// authentication response.
func (h *Handler) rejectRequest(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	log.Err(err).Str("path", r.URL.Path).Msg("request rejected by auth gate")

	switch {
	case errors.Is(err, ErrTokenNotProvided),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrTokenInvalid):
		writeError(w, r, err)
	default:
		writeError(w, r, service.ErrTokenInvalid)
	}
}
