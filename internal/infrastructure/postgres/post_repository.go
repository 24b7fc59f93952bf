package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postSelect = `
	SELECT p.id, p.title, p.content, p.category, p.user_id, p.created_at, p.updated_at,
	       u.id, u.name
	FROM posts p
	JOIN users u ON u.id = p.user_id
`

func scanPost(row pgx.Row) (*entity.Post, error) {
	p := &entity.Post{Owner: &entity.Owner{}}
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Category, &p.UserID,
		&p.CreatedAt, &p.UpdatedAt, &p.Owner.ID, &p.Owner.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO posts (title, content, category, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, p.Title, p.Content, p.Category, p.UserID).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	return scanPost(r.pool.QueryRow(ctx, postSelect+` WHERE p.id = $1`, id))
}

// List runs one query per page regardless of filter shape. The cross-board
// "ALL" view with search is served here as well, so browsing never fans out
// per category.
func (r *PostRepository) List(ctx context.Context, f repository.PostFilter, limit, offset int) ([]entity.Post, int64, error) {
	where := ``
	args := []any{}
	if f.Category != nil {
		args = append(args, *f.Category)
		where = ` WHERE p.category = $` + itoa(len(args))
	}
	if f.Search != "" {
		args = append(args, f.Search)
		n := itoa(len(args))
		clause := `(p.title ILIKE '%' || $` + n + ` || '%' OR p.content ILIKE '%' || $` + n +
			` || '%' OR u.name ILIKE '%' || $` + n + ` || '%')`
		if where == "" {
			where = ` WHERE ` + clause
		} else {
			where += ` AND ` + clause
		}
	}

	var total int64
	countQuery := `SELECT count(*) FROM posts p JOIN users u ON u.id = p.user_id` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	query := postSelect + where + ` ORDER BY p.created_at DESC LIMIT $` + itoa(n+1) + ` OFFSET $` + itoa(n+2)
	rows, err := r.pool.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posts []entity.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, *p)
	}
	return posts, total, rows.Err()
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $1, content = $2, category = $3, updated_at = now()
		WHERE id = $4
	`, p.Title, p.Content, p.Category, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM posts`).Scan(&n)
	return n, err
}

var _ repository.PostRepository = (*PostRepository)(nil)
