package me

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickethub/internal/http-server/handlers/auth/me/mocks"
	"tickethub/internal/http-server/middleware/auth"
	"tickethub/internal/lib/jwt"
	"tickethub/internal/lib/logger/handlers/slogdiscard"
	"tickethub/internal/models"
	"tickethub/internal/storage"
)

func TestMeHandler(t *testing.T) {
	t.Parallel()

	activeUser := &models.User{
		ID:       "u1",
		Email:    "gopher@example.com",
		Username: "gopher",
		Roles:    []string{models.RoleUser},
		IsActive: true,
	}

	deactivatedUser := &models.User{
		ID:       "u2",
		Email:    "gone@example.com",
		Username: "gone",
		Roles:    []string{models.RoleUser},
		IsActive: false,
	}

	testCases := []struct {
		name           string
		userID         string
		mockSetup      func(mock *mocks.UserProvider)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:   "Success",
			userID: "u1",
			mockSetup: func(mock *mocks.UserProvider) {
				mock.On("GetUserByID", "u1").Return(activeUser, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, "gopher@example.com")
				assert.NotContains(t, body, "pass_hash")
			},
		},
		{
			name:   "User deleted after token issued",
			userID: "missing",
			mockSetup: func(mock *mocks.UserProvider) {
				mock.On("GetUserByID", "missing").Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Deactivated account",
			userID: "u2",
			mockSetup: func(mock *mocks.UserProvider) {
				mock.On("GetUserByID", "u2").Return(deactivatedUser, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "deactivated")
			},
		},
		{
			name:   "Storage failure",
			userID: "u1",
			mockSetup: func(mock *mocks.UserProvider) {
				mock.On("GetUserByID", "u1").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewUserProvider(t)
			tc.mockSetup(mockProvider)

			handler := New(slogdiscard.NewDiscardLogger(), mockProvider)

			req, err := http.NewRequest(http.MethodGet, "/auth/me", nil)
			require.NoError(t, err)

			req = req.WithContext(auth.WithClaims(req.Context(), jwt.Claims{
				UserID: tc.userID,
				Roles:  []string{models.RoleUser},
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestMeRequiresIdentity(t *testing.T) {
	t.Parallel()

	handler := New(slogdiscard.NewDiscardLogger(), mocks.NewUserProvider(t))

	req, err := http.NewRequest(http.MethodGet, "/auth/me", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
