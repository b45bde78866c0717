package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tickethub/internal/lib/random"
	"tickethub/internal/models"
	"tickethub/internal/storage"
)

// maxTxAttempts bounds the automatic retry on serialization failures and
// ticket-number collisions. Business failures are never retried.
const maxTxAttempts = 3

// PurchaseTickets reserves quantity units of the event's inventory and
// creates the matching ticket records in a single transaction. Either all
// requested tickets are created and the inventory decremented, or nothing is.
func (s *Storage) PurchaseTickets(userID, eventID string, quantity int) (*storage.PurchaseResult, error) {
	if quantity <= 0 {
		return nil, storage.ErrInvalidQuantity
	}

	var result *storage.PurchaseResult
	var err error

	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		result, err = s.purchaseTx(userID, eventID, quantity)
		if err == nil || (!isRetryableTxError(err) && !isUniqueViolation(err)) {
			return result, err
		}
	}

	return nil, fmt.Errorf("purchase did not complete after %d attempts: %w", maxTxAttempts, err)
}

func (s *Storage) purchaseTx(userID, eventID string, quantity int) (*storage.PurchaseResult, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var userActive bool
	err = tx.QueryRow(`SELECT is_active FROM users WHERE id = $1`, userID).Scan(&userActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidUUID(err) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !userActive {
		return nil, storage.ErrUserNotFound
	}

	price, err := reserveTickets(tx, eventID, quantity)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tickets := make([]models.Ticket, 0, quantity)

	insertQuery := `
		INSERT INTO tickets (id, ticket_number, event_id, user_id, price, status, purchased_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for i := 0; i < quantity; i++ {
		ticket := models.Ticket{
			ID:           uuid.New().String(),
			TicketNumber: newTicketNumber(),
			EventID:      eventID,
			UserID:       userID,
			Price:        price,
			Status:       models.TicketActive,
			PurchasedAt:  now,
		}

		_, err = tx.Exec(insertQuery,
			ticket.ID,
			ticket.TicketNumber,
			ticket.EventID,
			ticket.UserID,
			ticket.Price,
			ticket.Status,
			ticket.PurchasedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create ticket: %w", err)
		}

		tickets = append(tickets, ticket)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &storage.PurchaseResult{
		Tickets:     tickets,
		TotalAmount: price * float64(quantity),
	}, nil
}

// reserveTickets is the check-and-decrement of the event inventory. The
// conditional UPDATE makes the availability check and the write one atomic
// statement, so two concurrent purchases of the last ticket cannot both pass.
func reserveTickets(tx *sql.Tx, eventID string, quantity int) (float64, error) {
	query := `
		UPDATE events
		SET available_tickets = available_tickets - $2, updated_at = NOW()
		WHERE id = $1 AND NOT is_archived AND available_tickets >= $2
		RETURNING price`

	var price float64
	err := tx.QueryRow(query, eventID, quantity).Scan(&price)
	if err == nil {
		return price, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		if isInvalidUUID(err) {
			return 0, storage.ErrEventNotFound
		}
		return 0, fmt.Errorf("failed to reserve tickets: %w", err)
	}

	// No row matched: either the event is missing or it is sold down below
	// the requested quantity.
	var available int
	err = tx.QueryRow(`SELECT available_tickets FROM events WHERE id = $1 AND NOT is_archived`, eventID).Scan(&available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrEventNotFound
		}
		return 0, fmt.Errorf("failed to reserve tickets: %w", err)
	}

	return 0, &storage.NotEnoughTicketsError{Available: available}
}

// releaseTickets returns quantity units to the event, clamped at the total so
// a double release can never inflate capacity.
func releaseTickets(tx *sql.Tx, eventID string, quantity int) error {
	if quantity <= 0 {
		return storage.ErrInvalidQuantity
	}

	query := `
		UPDATE events
		SET available_tickets = LEAST(available_tickets + $2, total_tickets), updated_at = NOW()
		WHERE id = $1`

	result, err := tx.Exec(query, eventID, quantity)
	if err != nil {
		return fmt.Errorf("failed to release tickets: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to release tickets: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

// CancelTicket moves an ACTIVE ticket owned by userID to CANCELLED and
// returns one inventory unit to its event. The status change and the release
// commit together.
func (s *Storage) CancelTicket(ticketID, userID string) (*models.Ticket, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ticket, err := getTicketForUpdate(tx, ticketID)
	if err != nil {
		return nil, err
	}

	if ticket.UserID != userID {
		return nil, storage.ErrNotOwner
	}
	if !ticket.Status.CanTransitionTo(models.TicketCancelled) {
		return nil, storage.ErrTicketNotActive
	}

	if _, err = tx.Exec(`UPDATE tickets SET status = $2 WHERE id = $1`, ticketID, models.TicketCancelled); err != nil {
		return nil, fmt.Errorf("failed to cancel ticket: %w", err)
	}

	if err = releaseTickets(tx, ticket.EventID, 1); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	ticket.Status = models.TicketCancelled

	return ticket, nil
}

// UseTicket marks an ACTIVE ticket as USED. Inventory is untouched: the
// capacity was consumed at purchase time.
func (s *Storage) UseTicket(ticketID string) (*models.Ticket, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ticket, err := getTicketForUpdate(tx, ticketID)
	if err != nil {
		return nil, err
	}

	if !ticket.Status.CanTransitionTo(models.TicketUsed) {
		return nil, storage.ErrTicketNotActive
	}

	usedAt := time.Now()
	if _, err = tx.Exec(`UPDATE tickets SET status = $2, used_at = $3 WHERE id = $1`,
		ticketID, models.TicketUsed, usedAt); err != nil {
		return nil, fmt.Errorf("failed to use ticket: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	ticket.Status = models.TicketUsed
	ticket.UsedAt = &usedAt

	return ticket, nil
}

func getTicketForUpdate(tx *sql.Tx, ticketID string) (*models.Ticket, error) {
	query := `
		SELECT id, ticket_number, event_id, user_id, price, status, purchased_at, used_at
		FROM tickets
		WHERE id = $1
		FOR UPDATE`

	var ticket models.Ticket
	err := tx.QueryRow(query, ticketID).Scan(
		&ticket.ID,
		&ticket.TicketNumber,
		&ticket.EventID,
		&ticket.UserID,
		&ticket.Price,
		&ticket.Status,
		&ticket.PurchasedAt,
		&ticket.UsedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidUUID(err) {
			return nil, storage.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return &ticket, nil
}

func (s *Storage) GetUserTickets(userID string) ([]models.Ticket, error) {
	if err := s.checkUserExists(userID); err != nil {
		return nil, err
	}

	query := `
		SELECT id, ticket_number, event_id, user_id, price, status, purchased_at, used_at
		FROM tickets
		WHERE user_id = $1
		ORDER BY purchased_at DESC`

	return s.queryTickets(query, userID)
}

func (s *Storage) GetEventTickets(eventID string) ([]models.Ticket, error) {
	if _, err := s.GetEvent(eventID); err != nil {
		return nil, err
	}

	query := `
		SELECT id, ticket_number, event_id, user_id, price, status, purchased_at, used_at
		FROM tickets
		WHERE event_id = $1
		ORDER BY purchased_at DESC`

	return s.queryTickets(query, eventID)
}

func (s *Storage) GetAllTickets() ([]models.Ticket, error) {
	query := `
		SELECT id, ticket_number, event_id, user_id, price, status, purchased_at, used_at
		FROM tickets
		ORDER BY purchased_at DESC`

	return s.queryTickets(query)
}

func (s *Storage) queryTickets(query string, args ...any) ([]models.Ticket, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}
	defer rows.Close()

	var tickets []models.Ticket
	for rows.Next() {
		var ticket models.Ticket
		err = rows.Scan(
			&ticket.ID,
			&ticket.TicketNumber,
			&ticket.EventID,
			&ticket.UserID,
			&ticket.Price,
			&ticket.Status,
			&ticket.PurchasedAt,
			&ticket.UsedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tickets: %w", err)
	}

	return tickets, nil
}

func newTicketNumber() string {
	return fmt.Sprintf("TKT-%d-%s", time.Now().UnixMilli(), random.NewRandomString(9))
}
