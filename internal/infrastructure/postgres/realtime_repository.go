package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
)

type RealtimeEventRepository struct {
	pool *pgxpool.Pool
}

func NewRealtimeEventRepository(pool *pgxpool.Pool) *RealtimeEventRepository {
	return &RealtimeEventRepository{pool: pool}
}

const realtimeSelect = `
	SELECT e.id, e.title, e.description, e.image_url, e.start_date, e.end_date,
	       e.business_id, e.user_id, e.created_at,
	       u.id, u.name, u.role,
	       b.id, b.name, b.address, b.latitude, b.longitude, b.user_id, b.created_at
	FROM realtime_events e
	JOIN users u ON u.id = e.user_id
	JOIN businesses b ON b.id = e.business_id
`

func scanRealtime(row pgx.Row) (*entity.RealtimeEvent, error) {
	e := &entity.RealtimeEvent{Owner: &entity.Owner{}, Business: &entity.Business{}}
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &e.ImageURL, &e.StartDate,
		&e.EndDate, &e.BusinessID, &e.UserID, &e.CreatedAt,
		&e.Owner.ID, &e.Owner.Name, &e.Owner.Role,
		&e.Business.ID, &e.Business.Name, &e.Business.Address, &e.Business.Latitude,
		&e.Business.Longitude, &e.Business.UserID, &e.Business.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *RealtimeEventRepository) Create(ctx context.Context, e *entity.RealtimeEvent) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO realtime_events (title, description, image_url, start_date, end_date, business_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, e.Title, e.Description, e.ImageURL, e.StartDate, e.EndDate, e.BusinessID, e.UserID).
		Scan(&e.ID, &e.CreatedAt)
}

func (r *RealtimeEventRepository) GetByID(ctx context.Context, id string) (*entity.RealtimeEvent, error) {
	return scanRealtime(r.pool.QueryRow(ctx, realtimeSelect+` WHERE e.id = $1`, id))
}

func (r *RealtimeEventRepository) List(ctx context.Context) ([]entity.RealtimeEvent, error) {
	rows, err := r.pool.Query(ctx, realtimeSelect+` ORDER BY e.start_date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []entity.RealtimeEvent
	for rows.Next() {
		e, err := scanRealtime(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *RealtimeEventRepository) Update(ctx context.Context, e *entity.RealtimeEvent) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE realtime_events
		SET title = $1, description = $2, image_url = $3, start_date = $4,
		    end_date = $5, business_id = $6
		WHERE id = $7
	`, e.Title, e.Description, e.ImageURL, e.StartDate, e.EndDate, e.BusinessID, e.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *RealtimeEventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM realtime_events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *RealtimeEventRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM realtime_events`).Scan(&n)
	return n, err
}

var _ repository.RealtimeEventRepository = (*RealtimeEventRepository)(nil)
