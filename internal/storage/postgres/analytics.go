package postgres

import (
	"fmt"

	"tickethub/internal/models"
)

const topEventsLimit = 5

func (s *Storage) GetAnalytics() (*models.Analytics, error) {
	analytics := &models.Analytics{
		StatusBreakdown: make(map[string]int),
	}

	countsQuery := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM events WHERE NOT is_archived),
			(SELECT COUNT(*) FROM tickets WHERE status <> 'CANCELLED'),
			(SELECT COALESCE(SUM(price), 0) FROM tickets WHERE status <> 'CANCELLED')`

	err := s.DB.QueryRow(countsQuery).Scan(
		&analytics.TotalUsers,
		&analytics.TotalEvents,
		&analytics.TicketsSold,
		&analytics.TotalRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get totals: %w", err)
	}

	breakdownQuery := `
		SELECT status, COUNT(*)
		FROM tickets
		GROUP BY status`

	rows, err := s.DB.Query(breakdownQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to get status breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status breakdown: %w", err)
		}
		analytics.StatusBreakdown[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status breakdown: %w", err)
	}

	topQuery := `
		SELECT e.id, e.title, COUNT(t.id), COALESCE(SUM(t.price), 0)
		FROM events e
		JOIN tickets t ON t.event_id = e.id AND t.status <> 'CANCELLED'
		GROUP BY e.id, e.title
		ORDER BY COUNT(t.id) DESC
		LIMIT $1`

	topRows, err := s.DB.Query(topQuery, topEventsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top events: %w", err)
	}
	defer topRows.Close()

	for topRows.Next() {
		var sales models.EventSales
		if err = topRows.Scan(&sales.EventID, &sales.Title, &sales.TicketsSold, &sales.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan top events: %w", err)
		}
		analytics.TopEvents = append(analytics.TopEvents, sales)
	}

	if err = topRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top events: %w", err)
	}

	return analytics, nil
}
