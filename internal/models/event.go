package models

import "time"

type Event struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	Category         string    `json:"category"`
	EventDate        time.Time `json:"event_date"`
	Price            float64   `json:"price"`
	TotalTickets     int       `json:"total_tickets"`
	AvailableTickets int       `json:"available_tickets"`
	OrganizerID      string    `json:"organizer_id"`
	IsArchived       bool      `json:"is_archived"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SoldTickets derives the number of sold units from the capacity pair.
func (e *Event) SoldTickets() int {
	return e.TotalTickets - e.AvailableTickets
}

// EventStats is the per-event ticket breakdown shown alongside an event.
type EventStats struct {
	TotalTickets     int            `json:"total_tickets"`
	AvailableTickets int            `json:"available_tickets"`
	SoldTickets      int            `json:"sold_tickets"`
	Likes            int            `json:"likes"`
	StatusBreakdown  map[string]int `json:"status_breakdown"`
}
