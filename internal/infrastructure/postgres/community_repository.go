package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
)

type CommunityRepository struct {
	pool *pgxpool.Pool
}

func NewCommunityRepository(pool *pgxpool.Pool) *CommunityRepository {
	return &CommunityRepository{pool: pool}
}

const communitySelect = `
	SELECT e.id, e.name, e.description, e.image_url, e.latitude, e.longitude,
	       e.date_time, e.user_id, e.created_at,
	       u.id, u.name, u.role
	FROM community_events e
	JOIN users u ON u.id = e.user_id
`

func scanCommunity(row pgx.Row) (*entity.CommunityEvent, error) {
	e := &entity.CommunityEvent{Owner: &entity.Owner{}}
	if err := row.Scan(&e.ID, &e.Name, &e.Description, &e.ImageURL, &e.Latitude,
		&e.Longitude, &e.DateTime, &e.UserID, &e.CreatedAt,
		&e.Owner.ID, &e.Owner.Name, &e.Owner.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *CommunityRepository) Create(ctx context.Context, e *entity.CommunityEvent) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO community_events (name, description, image_url, latitude, longitude, date_time, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, e.Name, e.Description, e.ImageURL, e.Latitude, e.Longitude, e.DateTime, e.UserID).
		Scan(&e.ID, &e.CreatedAt)
}

func (r *CommunityRepository) GetByID(ctx context.Context, id string) (*entity.CommunityEvent, error) {
	return scanCommunity(r.pool.QueryRow(ctx, communitySelect+` WHERE e.id = $1`, id))
}

// List returns every meetup soonest first; unlike busking, past meetups stay
// visible.
func (r *CommunityRepository) List(ctx context.Context) ([]entity.CommunityEvent, error) {
	rows, err := r.pool.Query(ctx, communitySelect+` ORDER BY e.date_time ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []entity.CommunityEvent
	for rows.Next() {
		e, err := scanCommunity(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *CommunityRepository) Update(ctx context.Context, e *entity.CommunityEvent) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE community_events
		SET name = $1, description = $2, image_url = $3, latitude = $4,
		    longitude = $5, date_time = $6
		WHERE id = $7
	`, e.Name, e.Description, e.ImageURL, e.Latitude, e.Longitude, e.DateTime, e.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CommunityRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM community_events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CommunityRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM community_events`).Scan(&n)
	return n, err
}

var _ repository.CommunityRepository = (*CommunityRepository)(nil)
