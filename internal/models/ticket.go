package models

import "time"

type TicketStatus string

const (
	TicketActive    TicketStatus = "ACTIVE"
	TicketCancelled TicketStatus = "CANCELLED"
	TicketUsed      TicketStatus = "USED"
)

// CanTransitionTo reports whether the status change is allowed. ACTIVE is the
// only non-terminal state: it may move to USED or CANCELLED and nothing else.
func (s TicketStatus) CanTransitionTo(next TicketStatus) bool {
	if s != TicketActive {
		return false
	}
	return next == TicketUsed || next == TicketCancelled
}

type Ticket struct {
	ID           string       `json:"id"`
	TicketNumber string       `json:"ticket_number"`
	EventID      string       `json:"event_id"`
	UserID       string       `json:"user_id"`
	Price        float64      `json:"price"`
	Status       TicketStatus `json:"status"`
	PurchasedAt  time.Time    `json:"purchased_at"`
	UsedAt       *time.Time   `json:"used_at,omitempty"`
}
