package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hospitalinventory/m/domain"
	"hospitalinventory/m/internal/store"
)

type fakeUsers struct {
	users     []domain.User
	createErr error
	// hidden rows become visible only after CreateUser fails, simulating a
	// concurrent signup that committed between the check and the insert.
	hidden []domain.User
}

func (f *fakeUsers) FindUserByEmailOrIDNumber(_ context.Context, email, idNumber string) (domain.User, error) {
	for _, u := range f.users {
		if u.Email == email || u.IDNumber == idNumber {
			return u, nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (f *fakeUsers) FindUserByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (f *fakeUsers) CreateUser(_ context.Context, user domain.User) (domain.User, error) {
	if f.createErr != nil {
		f.users = append(f.users, f.hidden...)
		return domain.User{}, f.createErr
	}
	user.ID = int64(len(f.users) + 1)
	f.users = append(f.users, user)
	return user, nil
}

func newUser(email, idNumber string) domain.User {
	return domain.User{FirstName: "Kofi", LastName: "Mensah", Email: email, IDNumber: idNumber, Position: "Pharmacist", PhoneNumber: "555"}
}

func TestSignup_HashesPassword(t *testing.T) {
	users := &fakeUsers{}
	svc := NewService(users, bcrypt.MinCost)

	created, err := svc.Signup(context.Background(), newUser(" kofi@ward.org ", "ID-7"), "s3cret")
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, "kofi@ward.org", created.Email)
	require.NotEqual(t, "s3cret", created.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret")))
}

func TestSignup_Duplicates(t *testing.T) {
	users := &fakeUsers{users: []domain.User{newUser("kofi@ward.org", "ID-7")}}
	svc := NewService(users, bcrypt.MinCost)
	ctx := context.Background()

	_, err := svc.Signup(ctx, newUser("kofi@ward.org", "ID-8"), "pw")
	require.ErrorIs(t, err, ErrEmailExists)

	_, err = svc.Signup(ctx, newUser("other@ward.org", "ID-7"), "pw")
	require.ErrorIs(t, err, ErrIDNumberExists)

	require.Len(t, users.users, 1)
}

func TestSignup_ConflictOnInsertIsClassified(t *testing.T) {
	users := &fakeUsers{
		createErr: store.ErrConflict,
		hidden:    []domain.User{newUser("racer@ward.org", "ID-9")},
	}
	svc := NewService(users, bcrypt.MinCost)

	_, err := svc.Signup(context.Background(), newUser("mine@ward.org", "ID-9"), "pw")
	require.ErrorIs(t, err, ErrIDNumberExists)
}

func TestSignup_StoreErrorPassesThrough(t *testing.T) {
	boom := errors.New("db down")
	svc := NewService(&fakeUsers{createErr: boom}, bcrypt.MinCost)

	_, err := svc.Signup(context.Background(), newUser("a@b.c", "ID-1"), "pw")
	require.ErrorIs(t, err, boom)
}

func TestLogin(t *testing.T) {
	users := &fakeUsers{}
	svc := NewService(users, bcrypt.MinCost)
	ctx := context.Background()
	_, err := svc.Signup(ctx, newUser("kofi@ward.org", "ID-7"), "s3cret")
	require.NoError(t, err)

	user, err := svc.Login(ctx, "kofi@ward.org", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "ID-7", user.IDNumber)

	_, err = svc.Login(ctx, "kofi@ward.org", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@ward.org", "s3cret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignup_PasswordTooLong(t *testing.T) {
	users := &fakeUsers{}
	svc := NewService(users, bcrypt.MinCost)

	_, err := svc.Signup(context.Background(), newUser("long@ward.org", "ID-3"), strings.Repeat("p", MaxPasswordBytes+1))
	require.ErrorIs(t, err, ErrPasswordTooLong)
	require.Empty(t, users.users)

	_, err = svc.Signup(context.Background(), newUser("edge@ward.org", "ID-4"), strings.Repeat("p", MaxPasswordBytes))
	require.NoError(t, err)
}
