package getAllUsers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickethub/internal/http-server/handlers/user/getAllUsers/mocks"
	"tickethub/internal/lib/logger/handlers/slogdiscard"
	"tickethub/internal/models"
)

func TestGetAllUsersHandler(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		mockSetup      func(mock *mocks.UsersProvider)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			mockSetup: func(mock *mocks.UsersProvider) {
				mock.On("GetAllUsers").Return([]models.User{
					{ID: "u1", Username: "gopher", PassHash: []byte("hash"), IsActive: true},
					{ID: "u2", Username: "rob", IsActive: true},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, "gopher")
				assert.Contains(t, body, "rob")
				// password hashes never leave the service
				assert.NotContains(t, body, "hash")
			},
		},
		{
			name: "No users",
			mockSetup: func(mock *mocks.UsersProvider) {
				mock.On("GetAllUsers").Return([]models.User{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"users":[]`)
			},
		},
		{
			name: "Storage failure",
			mockSetup: func(mock *mocks.UsersProvider) {
				mock.On("GetAllUsers").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewUsersProvider(t)
			tc.mockSetup(mockProvider)

			handler := New(slogdiscard.NewDiscardLogger(), mockProvider)

			req, err := http.NewRequest(http.MethodGet, "/users", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
