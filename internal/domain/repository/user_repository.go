package repository

import (
	"context"

	"github.com/kepl/map2-server/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	// List returns a page of users, newest first, optionally filtered by a
	// case-insensitive name/email substring, together with the total count.
	List(ctx context.Context, search string, limit, offset int) ([]entity.User, int64, error)
	Count(ctx context.Context) (int64, error)
}
