package getUserTickets

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickethub/internal/http-server/handlers/ticket/getUserTickets/mocks"
	"tickethub/internal/http-server/middleware/auth"
	"tickethub/internal/lib/jwt"
	"tickethub/internal/lib/logger/handlers/slogdiscard"
	"tickethub/internal/models"
	"tickethub/internal/storage"
)

func TestGetUserTicketsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		userID         string
		mockSetup      func(mock *mocks.UserTicketsProvider)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:   "Success",
			userID: "u1",
			mockSetup: func(mock *mocks.UserTicketsProvider) {
				mock.On("GetUserTickets", "u1").Return([]models.Ticket{
					{ID: "t1", TicketNumber: "TKT-1", Status: models.TicketActive},
					{ID: "t2", TicketNumber: "TKT-2", Status: models.TicketCancelled},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "TKT-1")
				assert.Contains(t, body, "TKT-2")
			},
		},
		{
			name:   "No tickets",
			userID: "u1",
			mockSetup: func(mock *mocks.UserTicketsProvider) {
				mock.On("GetUserTickets", "u1").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "User not found",
			userID: "ghost",
			mockSetup: func(mock *mocks.UserTicketsProvider) {
				mock.On("GetUserTickets", "ghost").Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Storage failure",
			userID: "u1",
			mockSetup: func(mock *mocks.UserTicketsProvider) {
				mock.On("GetUserTickets", "u1").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewUserTicketsProvider(t)
			tc.mockSetup(mockProvider)

			handler := New(logger, mockProvider)

			req, err := http.NewRequest(http.MethodGet, "/tickets/my", nil)
			require.NoError(t, err)

			req = req.WithContext(auth.WithClaims(req.Context(), jwt.Claims{UserID: tc.userID}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
