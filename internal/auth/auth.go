// Package auth registers users and checks login credentials against the
// stored bcrypt hash. It issues no session or token.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"hospitalinventory/m/domain"
	"hospitalinventory/m/internal/store"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrIDNumberExists     = errors.New("id number already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// UserStore is the persistence the service needs.
type UserStore interface {
	FindUserByEmailOrIDNumber(ctx context.Context, email, idNumber string) (domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
}

type Service struct {
	users UserStore
	cost  int
}

// NewService builds the service. A cost of 0 uses bcrypt.DefaultCost.
func NewService(users UserStore, cost int) *Service {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Service{users: users, cost: cost}
}

// Signup stores a new user with a hashed password. An existing email or id
// number yields ErrEmailExists or ErrIDNumberExists and nothing is written.
// Passwords longer than MaxPasswordBytes yield ErrPasswordTooLong.
func (s *Service) Signup(ctx context.Context, user domain.User, password string) (domain.User, error) {
	if len(password) > MaxPasswordBytes {
		return domain.User{}, ErrPasswordTooLong
	}
	user.Email = strings.TrimSpace(user.Email)
	user.IDNumber = strings.TrimSpace(user.IDNumber)

	if err := s.checkTaken(ctx, user); err != nil {
		return domain.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return domain.User{}, ErrPasswordTooLong
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hashed)

	created, err := s.users.CreateUser(ctx, user)
	if errors.Is(err, store.ErrConflict) {
		// Lost a race with a concurrent signup; report which field collided.
		if terr := s.checkTaken(ctx, user); terr != nil {
			return domain.User{}, terr
		}
		return domain.User{}, ErrEmailExists
	}
	if err != nil {
		return domain.User{}, err
	}
	return created, nil
}

func (s *Service) checkTaken(ctx context.Context, user domain.User) error {
	existing, err := s.users.FindUserByEmailOrIDNumber(ctx, user.Email, user.IDNumber)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.Email == user.Email {
		return ErrEmailExists
	}
	return ErrIDNumberExists
}

// Login returns the user when the password matches the stored hash.
func (s *Service) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.users.FindUserByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}
