package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
)

type LessonRepository struct {
	pool *pgxpool.Pool
}

func NewLessonRepository(pool *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{pool: pool}
}

const lessonSelect = `
	SELECT e.id, e.name, e.category, e.description, e.image_url, e.latitude,
	       e.longitude, e.user_id, e.created_at,
	       u.id, u.name, u.role
	FROM lesson_events e
	JOIN users u ON u.id = e.user_id
`

func scanLesson(row pgx.Row) (*entity.LessonEvent, error) {
	e := &entity.LessonEvent{Owner: &entity.Owner{}}
	if err := row.Scan(&e.ID, &e.Name, &e.Category, &e.Description, &e.ImageURL,
		&e.Latitude, &e.Longitude, &e.UserID, &e.CreatedAt,
		&e.Owner.ID, &e.Owner.Name, &e.Owner.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *LessonRepository) Create(ctx context.Context, e *entity.LessonEvent) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO lesson_events (name, category, description, image_url, latitude, longitude, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, e.Name, e.Category, e.Description, e.ImageURL, e.Latitude, e.Longitude, e.UserID).
		Scan(&e.ID, &e.CreatedAt)
}

func (r *LessonRepository) GetByID(ctx context.Context, id string) (*entity.LessonEvent, error) {
	return scanLesson(r.pool.QueryRow(ctx, lessonSelect+` WHERE e.id = $1`, id))
}

func (r *LessonRepository) List(ctx context.Context) ([]entity.LessonEvent, error) {
	rows, err := r.pool.Query(ctx, lessonSelect+` ORDER BY e.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []entity.LessonEvent
	for rows.Next() {
		e, err := scanLesson(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *LessonRepository) Update(ctx context.Context, e *entity.LessonEvent) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE lesson_events
		SET name = $1, category = $2, description = $3, image_url = $4,
		    latitude = $5, longitude = $6
		WHERE id = $7
	`, e.Name, e.Category, e.Description, e.ImageURL, e.Latitude, e.Longitude, e.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *LessonRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM lesson_events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *LessonRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM lesson_events`).Scan(&n)
	return n, err
}

var _ repository.LessonRepository = (*LessonRepository)(nil)
