package repository

import (
	"context"

	"github.com/kepl/map2-server/internal/domain/entity"
)

// PostFilter narrows a post listing. A nil Category means all boards; a
// non-empty Search matches title, content, or author name case-insensitively.
type PostFilter struct {
	Category *entity.PostCategory
	Search   string
}

type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	// List returns one page newest-first plus the total matching count.
	List(ctx context.Context, f PostFilter, limit, offset int) ([]entity.Post, int64, error)
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
