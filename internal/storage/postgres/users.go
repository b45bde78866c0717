package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"tickethub/internal/models"
	"tickethub/internal/storage"
)

func (s *Storage) SaveUser(user models.User) error {
	query := `
		INSERT INTO users (id, email, username, first_name, last_name, pass_hash, roles, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := s.DB.Exec(query,
		user.ID,
		user.Email,
		user.Username,
		user.FirstName,
		user.LastName,
		user.PassHash,
		models.JoinRoles(user.Roles),
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrUserExists
		}
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, email, username, first_name, last_name, pass_hash, roles, is_active, created_at, updated_at
		FROM users
		WHERE email = $1`

	return s.scanUser(s.DB.QueryRow(query, email))
}

func (s *Storage) GetUserByID(id string) (*models.User, error) {
	query := `
		SELECT id, email, username, first_name, last_name, pass_hash, roles, is_active, created_at, updated_at
		FROM users
		WHERE id = $1`

	return s.scanUser(s.DB.QueryRow(query, id))
}

func (s *Storage) GetAllUsers() ([]models.User, error) {
	query := `
		SELECT id, email, username, first_name, last_name, pass_hash, roles, is_active, created_at, updated_at
		FROM users
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		var roles string
		err = rows.Scan(
			&user.ID,
			&user.Email,
			&user.Username,
			&user.FirstName,
			&user.LastName,
			&user.PassHash,
			&roles,
			&user.IsActive,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		user.Roles = models.SplitRoles(roles)
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

func (s *Storage) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var roles string

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.PassHash,
		&roles,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidUUID(err) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.Roles = models.SplitRoles(roles)

	return &user, nil
}
