package createEvent

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tickethub/internal/http-server/handlers/event/createEvent/mocks"
	"tickethub/internal/http-server/middleware/auth"
	"tickethub/internal/lib/jwt"
	"tickethub/internal/lib/logger/handlers/slogdiscard"
	"tickethub/internal/models"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	validBody := `{
		"title": "Go Conference",
		"description": "A conference about Go",
		"location": "Berlin",
		"category": "tech",
		"event_date": "2026-10-01T18:00:00Z",
		"price": 25.5,
		"total_tickets": 100
	}`

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.EventCreator)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.MatchedBy(func(e models.Event) bool {
					return e.Title == "Go Conference" &&
						e.OrganizerID == "org1" &&
						e.TotalTickets == 100 &&
						e.AvailableTickets == 100 &&
						!e.IsArchived
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.NotEmpty(t, resp.Event.ID)
				assert.Equal(t, 100, resp.Event.AvailableTickets)
			},
		},
		{
			name:           "Missing title",
			requestBody:    `{"location": "Berlin", "event_date": "2026-10-01T18:00:00Z", "total_tickets": 10}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Title")
			},
		},
		{
			name:           "Zero tickets",
			requestBody:    `{"title": "T", "location": "L", "event_date": "2026-10-01T18:00:00Z", "total_tickets": 0}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Negative price",
			requestBody:    `{"title": "T", "location": "L", "event_date": "2026-10-01T18:00:00Z", "price": -5, "total_tickets": 10}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `nope`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Storage failure",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.AnythingOfType("models.Event")).Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			req = req.WithContext(auth.WithClaims(req.Context(), jwt.Claims{
				UserID: "org1",
				Roles:  []string{models.RoleOrganizer},
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

func TestCreateEventRequiresIdentity(t *testing.T) {
	t.Parallel()

	handler := New(slogdiscard.NewDiscardLogger(), mocks.NewEventCreator(t))

	req, err := http.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(`{}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
