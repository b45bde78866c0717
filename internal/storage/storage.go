package storage

import (
	"errors"
	"fmt"
	"time"

	"tickethub/internal/models"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrEventNotFound   = errors.New("event not found")
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrNotOwner        = errors.New("ticket belongs to another user")
	ErrTicketNotActive = errors.New("ticket is not active")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrTotalBelowSold  = errors.New("total tickets cannot be lower than sold tickets")
)

// NotEnoughTicketsError carries the actual remaining count so the caller can
// offer a reduced quantity.
type NotEnoughTicketsError struct {
	Available int
}

func (e *NotEnoughTicketsError) Error() string {
	return fmt.Sprintf("only %d tickets available", e.Available)
}

// PurchaseResult is what a successful purchase hands back to the caller:
// the created tickets plus the charged amount at the snapshotted price.
type PurchaseResult struct {
	Tickets     []models.Ticket
	TotalAmount float64
}

// EventUpdate is a partial event update; nil fields are left untouched.
// Changing TotalTickets re-derives AvailableTickets from the sold count.
type EventUpdate struct {
	Title        *string
	Description  *string
	Location     *string
	Category     *string
	EventDate    *time.Time
	Price        *float64
	TotalTickets *int
}
