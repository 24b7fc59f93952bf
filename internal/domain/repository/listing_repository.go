package repository

import (
	"context"
	"time"

	"github.com/kepl/map2-server/internal/domain/entity"
)

// BuskingRepository persists busking events. List is filtered to events
// scheduled at or after the given instant, soonest first.
type BuskingRepository interface {
	Create(ctx context.Context, e *entity.BuskingEvent) error
	GetByID(ctx context.Context, id string) (*entity.BuskingEvent, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]entity.BuskingEvent, error)
	Update(ctx context.Context, e *entity.BuskingEvent) error
	Delete(ctx context.Context, id string) error
	CountUpcoming(ctx context.Context, from time.Time) (int64, error)
}

type CommunityRepository interface {
	Create(ctx context.Context, e *entity.CommunityEvent) error
	GetByID(ctx context.Context, id string) (*entity.CommunityEvent, error)
	List(ctx context.Context) ([]entity.CommunityEvent, error)
	Update(ctx context.Context, e *entity.CommunityEvent) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type LessonRepository interface {
	Create(ctx context.Context, e *entity.LessonEvent) error
	GetByID(ctx context.Context, id string) (*entity.LessonEvent, error)
	List(ctx context.Context) ([]entity.LessonEvent, error)
	Update(ctx context.Context, e *entity.LessonEvent) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// BusinessRepository persists storefronts. Create and Update surface
// ErrDuplicate when the per-owner name uniqueness constraint is violated.
// Delete cascades the business's realtime events.
type BusinessRepository interface {
	Create(ctx context.Context, b *entity.Business) error
	GetByID(ctx context.Context, id string) (*entity.Business, error)
	// GetWithEvents also loads the business's realtime events.
	GetWithEvents(ctx context.Context, id string) (*entity.Business, error)
	List(ctx context.Context) ([]entity.Business, error)
	Update(ctx context.Context, b *entity.Business) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type RealtimeEventRepository interface {
	Create(ctx context.Context, e *entity.RealtimeEvent) error
	GetByID(ctx context.Context, id string) (*entity.RealtimeEvent, error)
	List(ctx context.Context) ([]entity.RealtimeEvent, error)
	Update(ctx context.Context, e *entity.RealtimeEvent) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// NayogiRepository persists ephemeral listings. PurgeExpired deletes every
// row whose expiry has passed; ListActive never returns an expired row.
type NayogiRepository interface {
	Create(ctx context.Context, e *entity.NayogiEvent) error
	GetByID(ctx context.Context, id string) (*entity.NayogiEvent, error)
	ListActive(ctx context.Context, now time.Time) ([]entity.NayogiEvent, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
	Update(ctx context.Context, e *entity.NayogiEvent) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// PlaceRepository persists the two admin-curated map layers (gardens and
// hotspots); the kind selects the backing table.
type PlaceRepository interface {
	Create(ctx context.Context, kind entity.PlaceKind, p *entity.Place) error
	GetByID(ctx context.Context, kind entity.PlaceKind, id string) (*entity.Place, error)
	List(ctx context.Context, kind entity.PlaceKind) ([]entity.Place, error)
	Update(ctx context.Context, kind entity.PlaceKind, p *entity.Place) error
	Delete(ctx context.Context, kind entity.PlaceKind, id string) error
	Count(ctx context.Context, kind entity.PlaceKind) (int64, error)
}
