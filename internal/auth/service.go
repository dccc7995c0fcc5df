package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/EternisAI/signup-portal/internal/db"
	"github.com/EternisAI/signup-portal/internal/users"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Store is the subset of db.Queries registration and login need.
type Store interface {
	CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error)
	GetUserByUsername(ctx context.Context, username string) (db.User, error)
	GetUserByEmail(ctx context.Context, email string) (db.User, error)
}

type RegisterParams struct {
	Username string
	Email    string
	Password string
}

type Service struct {
	store  Store
	config Config
}

func NewService(store Store, config Config) *Service {
	return &Service{
		store:  store,
		config: config,
	}
}

func (s *Service) Config() Config {
	return s.config
}

// Register creates a user after checking that neither the username nor the
// email is in use. A concurrent insert that wins the race is still mapped
// through the unique constraints.
func (s *Service) Register(ctx context.Context, params RegisterParams) (users.UserInfo, error) {
	if err := s.ensureAvailable(ctx, params); err != nil {
		return users.UserInfo{}, err
	}

	hash, err := users.HashPassword(params.Password)
	if err != nil {
		return users.UserInfo{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, db.CreateUserParams{
		ID:           uuid.New(),
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: hash,
		Role:         db.UserRoleUser,
	})
	if err != nil {
		if constraint, ok := db.UniqueViolation(err); ok {
			if constraint == db.UsersEmailKey {
				return users.UserInfo{}, ErrEmailTaken
			}
			return users.UserInfo{}, ErrUsernameTaken
		}
		return users.UserInfo{}, fmt.Errorf("create user: %w", err)
	}

	return users.ToUserInfo(user), nil
}

func (s *Service) ensureAvailable(ctx context.Context, params RegisterParams) error {
	if _, err := s.store.GetUserByUsername(ctx, params.Username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("query username: %w", err)
	}

	if _, err := s.store.GetUserByEmail(ctx, params.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("query email: %w", err)
	}
	return nil
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("query user: %w", err)
	}

	if !users.CheckPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := GenerateToken(s.config, user.ID.String(), user.Username, user.Role)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}
