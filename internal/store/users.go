package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hospitalinventory/m/domain"
)

const userColumns = `id, first_name, last_name, date_of_birth, email, position, id_number, phone_number, password`

// FindUserByEmailOrIDNumber returns the first user holding either value.
func (s *Store) FindUserByEmailOrIDNumber(ctx context.Context, email, idNumber string) (domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user, s.q(`SELECT `+userColumns+` FROM userss WHERE email = ? OR id_number = ? ORDER BY id LIMIT 1`), email, idNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// FindUserByEmail looks a user up by login email.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user, s.q(`SELECT `+userColumns+` FROM userss WHERE email = ?`), email)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// CreateUser inserts a user whose Password already holds the hash.
func (s *Store) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	err := s.db.QueryRowxContext(ctx, s.q(`INSERT INTO userss
            (first_name, last_name, date_of_birth, email, position, id_number, phone_number, password)
            VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`),
		user.FirstName, user.LastName, user.DateOfBirth, user.Email, user.Position, user.IDNumber, user.PhoneNumber, user.Password,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, ErrConflict
		}
		return domain.User{}, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}
