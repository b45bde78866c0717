package cancelTicket

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickethub/internal/http-server/handlers/ticket/cancelTicket/mocks"
	"tickethub/internal/http-server/middleware/auth"
	"tickethub/internal/lib/jwt"
	"tickethub/internal/lib/logger/handlers/slogdiscard"
	"tickethub/internal/models"
	"tickethub/internal/storage"
)

func TestCancelTicketHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	cancelledTicket := &models.Ticket{
		ID:           "t1",
		TicketNumber: "TKT-1",
		EventID:      "e1",
		UserID:       "u1",
		Status:       models.TicketCancelled,
	}

	testCases := []struct {
		name           string
		ticketID       string
		userID         string
		mockSetup      func(mock *mocks.TicketCanceller)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:     "Success",
			ticketID: "t1",
			userID:   "u1",
			mockSetup: func(mock *mocks.TicketCanceller) {
				mock.On("CancelTicket", "t1", "u1").Return(cancelledTicket, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"CANCELLED"`)
			},
		},
		{
			name:     "Ticket not found",
			ticketID: "missing",
			userID:   "u1",
			mockSetup: func(mock *mocks.TicketCanceller) {
				mock.On("CancelTicket", "missing", "u1").Return(nil, storage.ErrTicketNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:     "Not owner",
			ticketID: "t1",
			userID:   "u2",
			mockSetup: func(mock *mocks.TicketCanceller) {
				mock.On("CancelTicket", "t1", "u2").Return(nil, storage.ErrNotOwner)
			},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "your own tickets")
			},
		},
		{
			name:     "Already used",
			ticketID: "t1",
			userID:   "u1",
			mockSetup: func(mock *mocks.TicketCanceller) {
				mock.On("CancelTicket", "t1", "u1").Return(nil, storage.ErrTicketNotActive)
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "not active")
			},
		},
		{
			name:     "Storage failure",
			ticketID: "t1",
			userID:   "u1",
			mockSetup: func(mock *mocks.TicketCanceller) {
				mock.On("CancelTicket", "t1", "u1").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCanceller := mocks.NewTicketCanceller(t)
			tc.mockSetup(mockCanceller)

			handler := New(logger, mockCanceller)

			req, err := http.NewRequest(http.MethodPost, "/tickets/"+tc.ticketID+"/cancel", nil)
			require.NoError(t, err)

			req = req.WithContext(auth.WithClaims(req.Context(), jwt.Claims{
				UserID: tc.userID,
				Roles:  []string{models.RoleUser},
			}))

			router := chi.NewRouter()
			router.Post("/tickets/{id}/cancel", handler)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestCancelTicketRequiresIdentity(t *testing.T) {
	t.Parallel()

	handler := New(slogdiscard.NewDiscardLogger(), mocks.NewTicketCanceller(t))

	req, err := http.NewRequest(http.MethodPost, "/tickets/t1/cancel", nil)
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Post("/tickets/{id}/cancel", handler)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
