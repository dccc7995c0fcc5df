package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/EternisAI/signup-portal/internal/db"
	"github.com/EternisAI/signup-portal/internal/users"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// MockStore is a mock implementation of Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.User), args.Error(1)
}

func (m *MockStore) GetUserByUsername(ctx context.Context, username string) (db.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(db.User), args.Error(1)
}

func (m *MockStore) GetUserByEmail(ctx context.Context, email string) (db.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(db.User), args.Error(1)
}

func newService(store Store) *Service {
	return NewService(store, Config{Secret: testSecret, Expiry: time.Hour})
}

func TestRegister(t *testing.T) {
	store := new(MockStore)
	store.On("GetUserByUsername", mock.Anything, "alice").Return(db.User{}, pgx.ErrNoRows)
	store.On("GetUserByEmail", mock.Anything, "a@x.com").Return(db.User{}, pgx.ErrNoRows)
	store.On("CreateUser", mock.Anything, mock.MatchedBy(func(arg db.CreateUserParams) bool {
		return arg.Username == "alice" &&
			arg.Email == "a@x.com" &&
			arg.Role == db.UserRoleUser &&
			arg.ID != uuid.Nil &&
			users.CheckPassword("secret", arg.PasswordHash)
	})).Return(db.User{
		ID:       uuid.MustParse("6f1c1a52-4f1e-4c71-9a0e-1c1d2b3a4f5e"),
		Username: "alice",
		Email:    "a@x.com",
		Role:     db.UserRoleUser,
	}, nil)

	info, err := newService(store).Register(context.Background(), RegisterParams{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "6f1c1a52-4f1e-4c71-9a0e-1c1d2b3a4f5e", info.ID)
	assert.Equal(t, "alice", info.Username)
	assert.Equal(t, "a@x.com", info.Email)
	assert.Equal(t, "user", info.Role)
	store.AssertExpectations(t)
}

func TestRegisterUsernameTaken(t *testing.T) {
	store := new(MockStore)
	store.On("GetUserByUsername", mock.Anything, "alice").Return(db.User{Username: "alice"}, nil)

	_, err := newService(store).Register(context.Background(), RegisterParams{Username: "alice", Email: "a@x.com", Password: "secret"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
	store.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestRegisterEmailTaken(t *testing.T) {
	store := new(MockStore)
	store.On("GetUserByUsername", mock.Anything, "alice").Return(db.User{}, pgx.ErrNoRows)
	store.On("GetUserByEmail", mock.Anything, "a@x.com").Return(db.User{Email: "a@x.com"}, nil)

	_, err := newService(store).Register(context.Background(), RegisterParams{Username: "alice", Email: "a@x.com", Password: "secret"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	store.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestRegisterUniqueViolationRace(t *testing.T) {
	tests := []struct {
		constraint string
		want       error
	}{
		{db.UsersUsernameKey, ErrUsernameTaken},
		{db.UsersEmailKey, ErrEmailTaken},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			store := new(MockStore)
			store.On("GetUserByUsername", mock.Anything, "alice").Return(db.User{}, pgx.ErrNoRows)
			store.On("GetUserByEmail", mock.Anything, "a@x.com").Return(db.User{}, pgx.ErrNoRows)
			store.On("CreateUser", mock.Anything, mock.Anything).
				Return(db.User{}, &pgconn.PgError{Code: "23505", ConstraintName: tt.constraint})

			_, err := newService(store).Register(context.Background(), RegisterParams{Username: "alice", Email: "a@x.com", Password: "secret"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegisterStoreError(t *testing.T) {
	store := new(MockStore)
	store.On("GetUserByUsername", mock.Anything, "alice").Return(db.User{}, errors.New("connection refused"))

	_, err := newService(store).Register(context.Background(), RegisterParams{Username: "alice", Email: "a@x.com", Password: "secret"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query username")
}

func TestLogin(t *testing.T) {
	hash, err := users.HashPassword("secret")
	require.NoError(t, err)

	id := uuid.New()
	store := new(MockStore)
	store.On("GetUserByUsername", mock.Anything, "alice").Return(db.User{
		ID:           id,
		Username:     "alice",
		PasswordHash: hash,
		Role:         db.UserRoleUser,
	}, nil)
	store.On("GetUserByUsername", mock.Anything, "nobody").Return(db.User{}, pgx.ErrNoRows)

	svc := newService(store)

	t.Run("success", func(t *testing.T) {
		token, err := svc.Login(context.Background(), "alice", "secret")
		require.NoError(t, err)

		claims, err := ValidateToken(testSecret, token)
		require.NoError(t, err)
		assert.Equal(t, id.String(), claims.UserID)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, "user", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "alice", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
