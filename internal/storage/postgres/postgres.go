package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"tickethub/internal/config"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	storage := &Storage{DB: db}

	if err = storage.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return storage, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id         UUID PRIMARY KEY,
			email      TEXT NOT NULL UNIQUE,
			username   TEXT NOT NULL UNIQUE,
			first_name TEXT NOT NULL,
			last_name  TEXT NOT NULL,
			pass_hash  BYTEA NOT NULL,
			roles      TEXT NOT NULL,
			is_active  BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS events (
			id                UUID PRIMARY KEY,
			title             TEXT NOT NULL,
			description       TEXT NOT NULL DEFAULT '',
			location          TEXT NOT NULL DEFAULT '',
			category          TEXT NOT NULL DEFAULT '',
			event_date        TIMESTAMPTZ NOT NULL,
			price             DOUBLE PRECISION NOT NULL,
			total_tickets     INTEGER NOT NULL,
			available_tickets INTEGER NOT NULL,
			organizer_id      UUID NOT NULL REFERENCES users (id),
			is_archived       BOOLEAN NOT NULL DEFAULT FALSE,
			created_at        TIMESTAMPTZ NOT NULL,
			updated_at        TIMESTAMPTZ NOT NULL,
			CONSTRAINT events_capacity CHECK (
				available_tickets >= 0 AND available_tickets <= total_tickets
			)
		);

		CREATE TABLE IF NOT EXISTS tickets (
			id            UUID PRIMARY KEY,
			ticket_number TEXT NOT NULL UNIQUE,
			event_id      UUID NOT NULL REFERENCES events (id),
			user_id       UUID NOT NULL REFERENCES users (id),
			price         DOUBLE PRECISION NOT NULL,
			status        TEXT NOT NULL,
			purchased_at  TIMESTAMPTZ NOT NULL,
			used_at       TIMESTAMPTZ
		);

		CREATE INDEX IF NOT EXISTS idx_tickets_event ON tickets (event_id);
		CREATE INDEX IF NOT EXISTS idx_tickets_user ON tickets (user_id);

		CREATE TABLE IF NOT EXISTS event_likes (
			user_id    UUID NOT NULL REFERENCES users (id),
			event_id   UUID NOT NULL REFERENCES events (id),
			created_at TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (user_id, event_id)
		);`

	if _, err := s.DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// Malformed UUID literals make Postgres fail the whole statement; callers
// treat them the same as a missing row.
func isInvalidUUID(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "22P02"
}

// Serialization failures and deadlocks are safe to retry once the
// transaction has rolled back.
func isRetryableTxError(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "40001" || pqErr.Code == "40P01"
}
