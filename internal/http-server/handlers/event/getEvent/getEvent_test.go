package getEvent

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickethub/internal/http-server/handlers/event/getEvent/mocks"
	"tickethub/internal/lib/logger/handlers/slogdiscard"
	"tickethub/internal/models"
	"tickethub/internal/storage"
)

func TestGetEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	event := &models.Event{
		ID:               "e1",
		Title:            "Go Conference",
		Location:         "Berlin",
		Category:         "conference",
		EventDate:        time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC),
		Price:            49.90,
		TotalTickets:     100,
		AvailableTickets: 73,
		OrganizerID:      "org-1",
	}

	stats := &models.EventStats{
		TotalTickets:     100,
		AvailableTickets: 73,
		SoldTickets:      27,
		Likes:            12,
		StatusBreakdown: map[string]int{
			string(models.TicketActive): 25,
			string(models.TicketUsed):   2,
		},
	}

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(mock *mocks.EventProvider)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Success",
			eventID: "e1",
			mockSetup: func(mock *mocks.EventProvider) {
				mock.On("GetEvent", "e1").Return(event, nil)
				mock.On("GetEventStats", "e1").Return(stats, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, "Go Conference")
				assert.Contains(t, body, `"sold_tickets":27`)
				assert.Contains(t, body, `"likes":12`)
			},
		},
		{
			name:    "Event not found",
			eventID: "missing",
			mockSetup: func(mock *mocks.EventProvider) {
				mock.On("GetEvent", "missing").Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "event not found")
			},
		},
		{
			name:    "Stats failure",
			eventID: "e1",
			mockSetup: func(mock *mocks.EventProvider) {
				mock.On("GetEvent", "e1").Return(event, nil)
				mock.On("GetEventStats", "e1").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:    "Storage failure",
			eventID: "e1",
			mockSetup: func(mock *mocks.EventProvider) {
				mock.On("GetEvent", "e1").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewEventProvider(t)
			tc.mockSetup(mockProvider)

			handler := New(logger, mockProvider)

			req, err := http.NewRequest(http.MethodGet, "/events/"+tc.eventID, nil)
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Get("/events/{id}", handler)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
