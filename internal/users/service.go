package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/EternisAI/signup-portal/internal/db"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrUserNotFound = errors.New("user not found")

type UserInfo struct {
	ID        string
	Username  string
	Email     string
	Role      string
	CreatedAt time.Time
}

// Store is the subset of db.Queries the user service reads from.
type Store interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (db.User, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) GetProfile(ctx context.Context, userID string) (UserInfo, error) {
	parsed, err := uuid.Parse(userID)
	if err != nil {
		return UserInfo{}, ErrUserNotFound
	}

	u, err := s.store.GetUserByID(ctx, parsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return UserInfo{}, ErrUserNotFound
		}
		return UserInfo{}, fmt.Errorf("get user: %w", err)
	}

	return ToUserInfo(u), nil
}

func ToUserInfo(u db.User) UserInfo {
	return UserInfo{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
