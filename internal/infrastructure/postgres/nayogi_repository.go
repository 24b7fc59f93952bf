package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
)

type NayogiRepository struct {
	pool *pgxpool.Pool
}

func NewNayogiRepository(pool *pgxpool.Pool) *NayogiRepository {
	return &NayogiRepository{pool: pool}
}

const nayogiSelect = `
	SELECT e.id, e.title, e.description, e.image_url, e.latitude, e.longitude,
	       e.user_id, e.expires_at, e.created_at,
	       u.id, u.name, u.role
	FROM nayogi_events e
	JOIN users u ON u.id = e.user_id
`

func scanNayogi(row pgx.Row) (*entity.NayogiEvent, error) {
	e := &entity.NayogiEvent{Owner: &entity.Owner{}}
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &e.ImageURL, &e.Latitude,
		&e.Longitude, &e.UserID, &e.ExpiresAt, &e.CreatedAt,
		&e.Owner.ID, &e.Owner.Name, &e.Owner.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *NayogiRepository) Create(ctx context.Context, e *entity.NayogiEvent) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO nayogi_events (title, description, image_url, latitude, longitude, user_id, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, e.Title, e.Description, e.ImageURL, e.Latitude, e.Longitude, e.UserID, e.ExpiresAt).
		Scan(&e.ID, &e.CreatedAt)
}

func (r *NayogiRepository) GetByID(ctx context.Context, id string) (*entity.NayogiEvent, error) {
	return scanNayogi(r.pool.QueryRow(ctx, nayogiSelect+` WHERE e.id = $1`, id))
}

func (r *NayogiRepository) ListActive(ctx context.Context, now time.Time) ([]entity.NayogiEvent, error) {
	rows, err := r.pool.Query(ctx, nayogiSelect+`
		WHERE e.expires_at > $1
		ORDER BY e.created_at DESC
	`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []entity.NayogiEvent
	for rows.Next() {
		e, err := scanNayogi(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *NayogiRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM nayogi_events WHERE expires_at < $1`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

func (r *NayogiRepository) Update(ctx context.Context, e *entity.NayogiEvent) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE nayogi_events
		SET title = $1, description = $2, image_url = $3, latitude = $4,
		    longitude = $5, expires_at = $6
		WHERE id = $7
	`, e.Title, e.Description, e.ImageURL, e.Latitude, e.Longitude, e.ExpiresAt, e.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *NayogiRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM nayogi_events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *NayogiRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM nayogi_events`).Scan(&n)
	return n, err
}

var _ repository.NayogiRepository = (*NayogiRepository)(nil)
