package models

// Analytics is the platform-wide summary shown on the admin dashboard.
type Analytics struct {
	TotalUsers      int            `json:"total_users"`
	TotalEvents     int            `json:"total_events"`
	TicketsSold     int            `json:"tickets_sold"`
	TotalRevenue    float64        `json:"total_revenue"`
	StatusBreakdown map[string]int `json:"status_breakdown"`
	TopEvents       []EventSales   `json:"top_events"`
}

// EventSales aggregates sold tickets and revenue for one event. Cancelled
// tickets do not count towards either figure.
type EventSales struct {
	EventID     string  `json:"event_id"`
	Title       string  `json:"title"`
	TicketsSold int     `json:"tickets_sold"`
	Revenue     float64 `json:"revenue"`
}
