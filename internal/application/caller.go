package application

import (
	"context"
	"errors"
	"time"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
)

// resolveCaller turns an authenticated user id into the stored user row.
// A stale id (deleted account, bad token subject) is an authentication
// failure, not a lookup miss.
func resolveCaller(ctx context.Context, users repository.UserRepository, userID string) (*entity.User, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	u, err := users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return u, nil
}

// normalizeImageURL maps a blank image field to NULL, mirroring how the
// write paths store optional media.
func normalizeImageURL(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// futureOnly rejects schedule instants that are not strictly after now.
func futureOnly(field string, t, now time.Time) error {
	if !t.After(now) {
		return validationf("%s must be in the future", field)
	}
	return nil
}
