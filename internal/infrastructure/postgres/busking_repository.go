package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
)

func itoa(n int) string { return strconv.Itoa(n) }

type BuskingRepository struct {
	pool *pgxpool.Pool
}

func NewBuskingRepository(pool *pgxpool.Pool) *BuskingRepository {
	return &BuskingRepository{pool: pool}
}

const buskingSelect = `
	SELECT e.id, e.name, e.description, e.image_url, e.latitude, e.longitude,
	       e.date_time, e.user_id, e.created_at,
	       u.id, u.name, u.role, u.is_busker
	FROM busking_events e
	JOIN users u ON u.id = e.user_id
`

func scanBusking(row pgx.Row) (*entity.BuskingEvent, error) {
	e := &entity.BuskingEvent{Owner: &entity.Owner{}}
	if err := row.Scan(&e.ID, &e.Name, &e.Description, &e.ImageURL, &e.Latitude,
		&e.Longitude, &e.DateTime, &e.UserID, &e.CreatedAt,
		&e.Owner.ID, &e.Owner.Name, &e.Owner.Role, &e.Owner.IsBusker); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *BuskingRepository) Create(ctx context.Context, e *entity.BuskingEvent) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO busking_events (name, description, image_url, latitude, longitude, date_time, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, e.Name, e.Description, e.ImageURL, e.Latitude, e.Longitude, e.DateTime, e.UserID).
		Scan(&e.ID, &e.CreatedAt)
}

func (r *BuskingRepository) GetByID(ctx context.Context, id string) (*entity.BuskingEvent, error) {
	return scanBusking(r.pool.QueryRow(ctx, buskingSelect+` WHERE e.id = $1`, id))
}

func (r *BuskingRepository) ListUpcoming(ctx context.Context, from time.Time) ([]entity.BuskingEvent, error) {
	rows, err := r.pool.Query(ctx, buskingSelect+`
		WHERE e.date_time >= $1
		ORDER BY e.date_time ASC
	`, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []entity.BuskingEvent
	for rows.Next() {
		e, err := scanBusking(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *BuskingRepository) Update(ctx context.Context, e *entity.BuskingEvent) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE busking_events
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

func (r *BuskingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM busking_events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *BuskingRepository) CountUpcoming(ctx context.Context, from time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM busking_events WHERE date_time >= $1
	`, from).Scan(&n)
	return n, err
}

var _ repository.BuskingRepository = (*BuskingRepository)(nil)
