package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mqsalx/user-management-api/internal/config"
	"github.com/mqsalx/user-management-api/internal/logger"
	"github.com/mqsalx/user-management-api/internal/mock"
	"github.com/mqsalx/user-management-api/internal/service"
	"github.com/mqsalx/user-management-api/internal/utils"
	"github.com/mqsalx/user-management-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testHandlerConfig = config.App{APIVersion: "v1"}

// newTestHandler builds a Handler with gomock service doubles. The mocks
// carry no expectations; each test registers its own.
func newTestHandler(t *testing.T) (*Handler, *mock.MockAuthService, *mock.MockUserService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	authSvc := mock.NewMockAuthService(ctrl)
	userSvc := mock.NewMockUserService(ctrl)

	h := NewHandler(&service.Services{
		AuthService: authSvc,
		UserService: userSvc,
	}, testHandlerConfig, logger.Nop())

	return h, authSvc, userSvc
}

// injectNopLogger puts a nop logger into the request context so handlers
// that call logger.FromRequest stay quiet.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, target, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func decodeErrorResponse(t *testing.T, body []byte) models.ErrorResponse {
	t.Helper()
	var envelope models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope
}

// ─────────────────────────────────────────────
// auth gate table test
// ─────────────────────────────────────────────

func TestAuth_Gate_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		authHeader     string
		parseErr       error
		parseCalled    bool
		expectedStatus int
		expectedMsg    string
		nextCalled     bool
		wantUserID     int64
	}{
		{
			name:           "allow-listed login path forwards without header",
			target:         "/api-v1/login",
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:           "allow-listed docs path forwards without header",
			target:         "/docs",
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:           "allow-listed schema path forwards without header",
			target:         "/openapi.json",
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:           "missing Authorization header rejects",
			target:         "/api-v1/users",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Token not provided!",
		},
		{
			name:           "non-Bearer scheme rejects",
			target:         "/api-v1/users",
			authHeader:     "Token abc.def.ghi",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Token not provided!",
		},
		{
			name:           "Bearer with empty token rejects",
			target:         "/api-v1/users",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Token not provided!",
		},
		{
			name:           "expired token rejects with expiry message",
			target:         "/api-v1/users",
			authHeader:     "Bearer expired-token",
			parseErr:       service.ErrTokenExpired,
			parseCalled:    true,
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Token expired!",
		},
		{
			name:           "malformed token rejects with invalid message",
			target:         "/api-v1/users",
			authHeader:     "Bearer garbage",
			parseErr:       service.ErrTokenInvalid,
			parseCalled:    true,
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid token!",
		},
		{
			name:           "valid token forwards with user id in context",
			target:         "/api-v1/users",
			authHeader:     "Bearer valid-token",
			parseCalled:    true,
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantUserID:     42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, authSvc, _ := newTestHandler(t)

			if tt.parseCalled {
				if tt.parseErr != nil {
					authSvc.EXPECT().
						ParseToken(gomock.Any(), gomock.Any()).
						Return(models.Token{}, tt.parseErr)
				} else {
					authSvc.EXPECT().
						ParseToken(gomock.Any(), gomock.Any()).
						Return(models.Token{UserID: tt.wantUserID}, nil)
				}
			}

			nextCalled := false
			var capturedUserID any
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				capturedUserID = r.Context().Value(utils.UserIDCtxKey)
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.target, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)

			if tt.expectedMsg != "" {
				envelope := decodeErrorResponse(t, rr.Body.Bytes())
				assert.Equal(t, "401", envelope.StatusCode)
				assert.Equal(t, "Unauthorized", envelope.StatusName)
				assert.Equal(t, tt.expectedMsg, envelope.Message)
			}
			if tt.nextCalled && tt.wantUserID != 0 {
				assert.Equal(t, tt.wantUserID, capturedUserID)
			}
		})
	}
}

// A request without a Bearer token must never hit the verifier: the
// header stage rejects before the verification stage runs. The mock has
// no ParseToken expectation, so a call would fail the test.
func TestAuth_VerifierNotCalledWithoutToken(t *testing.T) {
	h, _, _ := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	rr := executeAuth(h, "/api-v1/users", "", next)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// Allow-listed paths skip the verifier entirely, even when the request
// carries a (bad) token.
func TestAuth_AllowListSkipsVerifier(t *testing.T) {
	h, _, _ := newTestHandler(t)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "/api-v1/login", "Bearer garbage", next)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, nextCalled)
}

// The allow-list matches exact paths only.
func TestAuth_AllowListExactMatchOnly(t *testing.T) {
	h, _, _ := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	for _, target := range []string{"/api-v1/login/extra", "/api-v1", "/docs/page"} {
		rr := executeAuth(h, target, "", next)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "path %s must not bypass the gate", target)
	}
}

// An error outside the gate's taxonomy is normalised to a generic 401
// instead of leaking through the mapper as a 500.
func TestAuth_UnknownErrorNormalisedTo401(t *testing.T) {
	h, authSvc, _ := newTestHandler(t)

	authSvc.EXPECT().
		ParseToken(gomock.Any(), gomock.Any()).
		Return(models.Token{}, assert.AnError)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	rr := executeAuth(h, "/api-v1/users", "Bearer token", next)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	envelope := decodeErrorResponse(t, rr.Body.Bytes())
	assert.Equal(t, "Invalid token!", envelope.Message)
}

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h, authSvc, _ := newTestHandler(t)

	authSvc.EXPECT().
		ParseToken(gomock.Any(), gomock.Any()).
		Return(models.Token{UserID: 1}, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/api-v1/users", nil)
	req = injectNopLogger(req)
	req.Header.Set("Authorization", "Bearer token")
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, originalCtx, req.Context(), "original request context must not be mutated")
}

func TestAuth_ConcurrentRequests(t *testing.T) {
	h, authSvc, _ := newTestHandler(t)

	authSvc.EXPECT().
		ParseToken(gomock.Any(), gomock.Any()).
		Return(models.Token{UserID: 7}, nil).
		AnyTimes()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.auth(next)

	const n = 50
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodGet, "/api-v1/users", nil)
			req = injectNopLogger(req)
			req.Header.Set("Authorization", "Bearer concurrent-token")
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)
			done <- rr.Code
		}()
	}

	for i := 0; i < n; i++ {
		code := <-done
		assert.Equal(t, http.StatusOK, code)
	}
}
