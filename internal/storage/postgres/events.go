package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tickethub/internal/models"
	"tickethub/internal/storage"
)

func (s *Storage) CreateEvent(event models.Event) error {
	query := `
		INSERT INTO events (id, title, description, location, category, event_date,
			price, total_tickets, available_tickets, organizer_id, is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := s.DB.Exec(query,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.Category,
		event.EventDate,
		event.Price,
		event.TotalTickets,
		event.AvailableTickets,
		event.OrganizerID,
		event.IsArchived,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (s *Storage) GetEvent(id string) (*models.Event, error) {
	query := `
		SELECT id, title, description, location, category, event_date,
			price, total_tickets, available_tickets, organizer_id, is_archived, created_at, updated_at
		FROM events
		WHERE id = $1`

	var event models.Event
	err := s.DB.QueryRow(query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.Category,
		&event.EventDate,
		&event.Price,
		&event.TotalTickets,
		&event.AvailableTickets,
		&event.OrganizerID,
		&event.IsArchived,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidUUID(err) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

func (s *Storage) GetAllEvents() ([]models.Event, error) {
	query := `
		SELECT id, title, description, location, category, event_date,
			price, total_tickets, available_tickets, organizer_id, is_archived, created_at, updated_at
		FROM events
		WHERE NOT is_archived
		ORDER BY event_date ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Location,
			&event.Category,
			&event.EventDate,
			&event.Price,
			&event.TotalTickets,
			&event.AvailableTickets,
			&event.OrganizerID,
			&event.IsArchived,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) GetEventStats(eventID string) (*models.EventStats, error) {
	event, err := s.GetEvent(eventID)
	if err != nil {
		return nil, err
	}

	stats := &models.EventStats{
		TotalTickets:     event.TotalTickets,
		AvailableTickets: event.AvailableTickets,
		SoldTickets:      event.SoldTickets(),
		StatusBreakdown:  make(map[string]int),
	}

	breakdownQuery := `
		SELECT status, COUNT(*)
		FROM tickets
		WHERE event_id = $1
		GROUP BY status`

	rows, err := s.DB.Query(breakdownQuery, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan ticket breakdown: %w", err)
		}
		stats.StatusBreakdown[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ticket breakdown: %w", err)
	}

	likesQuery := `SELECT COUNT(*) FROM event_likes WHERE event_id = $1`

	if err = s.DB.QueryRow(likesQuery, eventID).Scan(&stats.Likes); err != nil {
		return nil, fmt.Errorf("failed to get likes count: %w", err)
	}

	return stats, nil
}

// UpdateEvent applies a partial update under a row lock. If TotalTickets
// changes, AvailableTickets is re-derived as newTotal - sold so that already
// sold tickets are preserved; shrinking below the sold count is rejected.
func (s *Storage) UpdateEvent(id string, upd storage.EventUpdate) (*models.Event, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		SELECT id, title, description, location, category, event_date,
			price, total_tickets, available_tickets, organizer_id, is_archived, created_at, updated_at
		FROM events
		WHERE id = $1
		FOR UPDATE`

	var event models.Event
	err = tx.QueryRow(query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.Category,
		&event.EventDate,
		&event.Price,
		&event.TotalTickets,
		&event.AvailableTickets,
		&event.OrganizerID,
		&event.IsArchived,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidUUID(err) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if upd.Title != nil {
		event.Title = *upd.Title
	}
	if upd.Description != nil {
		event.Description = *upd.Description
	}
	if upd.Location != nil {
		event.Location = *upd.Location
	}
	if upd.Category != nil {
		event.Category = *upd.Category
	}
	if upd.EventDate != nil {
		event.EventDate = *upd.EventDate
	}
	if upd.Price != nil {
		event.Price = *upd.Price
	}
	if upd.TotalTickets != nil {
		sold := event.SoldTickets()
		if *upd.TotalTickets < sold {
			return nil, storage.ErrTotalBelowSold
		}
		event.TotalTickets = *upd.TotalTickets
		event.AvailableTickets = *upd.TotalTickets - sold
	}
	event.UpdatedAt = time.Now()

	updateQuery := `
		UPDATE events
		SET title = $2, description = $3, location = $4, category = $5, event_date = $6,
			price = $7, total_tickets = $8, available_tickets = $9, updated_at = $10
		WHERE id = $1`

	_, err = tx.Exec(updateQuery,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.Category,
		event.EventDate,
		event.Price,
		event.TotalTickets,
		event.AvailableTickets,
		event.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &event, nil
}

func (s *Storage) ArchiveEvent(id string) error {
	query := `
		UPDATE events
		SET is_archived = TRUE, updated_at = NOW()
		WHERE id = $1`

	result, err := s.DB.Exec(query, id)
	if err != nil {
		if isInvalidUUID(err) {
			return storage.ErrEventNotFound
		}
		return fmt.Errorf("failed to archive event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to archive event: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

func (s *Storage) LikeEvent(userID, eventID string) error {
	if err := s.checkUserExists(userID); err != nil {
		return err
	}
	if _, err := s.GetEvent(eventID); err != nil {
		return err
	}

	query := `
		INSERT INTO event_likes (user_id, event_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT DO NOTHING`

	if _, err := s.DB.Exec(query, userID, eventID); err != nil {
		return fmt.Errorf("failed to like event: %w", err)
	}

	return nil
}

func (s *Storage) UnlikeEvent(userID, eventID string) error {
	if err := s.checkUserExists(userID); err != nil {
		return err
	}
	if _, err := s.GetEvent(eventID); err != nil {
		return err
	}

	query := `DELETE FROM event_likes WHERE user_id = $1 AND event_id = $2`

	if _, err := s.DB.Exec(query, userID, eventID); err != nil {
		return fmt.Errorf("failed to unlike event: %w", err)
	}

	return nil
}

func (s *Storage) checkUserExists(userID string) error {
	var exists bool
	err := s.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
	if err != nil {
		if isInvalidUUID(err) {
			return storage.ErrUserNotFound
		}
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return storage.ErrUserNotFound
	}

	return nil
}
