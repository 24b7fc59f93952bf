package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
)

type BusinessRepository struct {
	pool *pgxpool.Pool
}

func NewBusinessRepository(pool *pgxpool.Pool) *BusinessRepository {
	return &BusinessRepository{pool: pool}
}

const businessSelect = `
	SELECT b.id, b.name, b.address, b.latitude, b.longitude, b.user_id, b.created_at,
	       u.id, u.name, u.role
	FROM businesses b
	JOIN users u ON u.id = b.user_id
`

func scanBusiness(row pgx.Row) (*entity.Business, error) {
	b := &entity.Business{Owner: &entity.Owner{}}
	if err := row.Scan(&b.ID, &b.Name, &b.Address, &b.Latitude, &b.Longitude,
		&b.UserID, &b.CreatedAt, &b.Owner.ID, &b.Owner.Name, &b.Owner.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *BusinessRepository) Create(ctx context.Context, b *entity.Business) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO businesses (name, address, latitude, longitude, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, b.Name, b.Address, b.Latitude, b.Longitude, b.UserID).
		Scan(&b.ID, &b.CreatedAt)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *BusinessRepository) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	return scanBusiness(r.pool.QueryRow(ctx, businessSelect+` WHERE b.id = $1`, id))
}

func (r *BusinessRepository) GetWithEvents(ctx context.Context, id string) (*entity.Business, error) {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, realtimeSelect+` WHERE e.business_id = $1 ORDER BY e.start_date ASC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	b.Events = []entity.RealtimeEvent{}
	for rows.Next() {
		e, err := scanRealtime(rows)
		if err != nil {
			return nil, err
		}
		b.Events = append(b.Events, *e)
	}
	return b, rows.Err()
}

func (r *BusinessRepository) List(ctx context.Context) ([]entity.Business, error) {
	rows, err := r.pool.Query(ctx, businessSelect+` ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var businesses []entity.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, *b)
	}
	return businesses, rows.Err()
}

func (r *BusinessRepository) Update(ctx context.Context, b *entity.Business) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE businesses
		SET name = $1, address = $2, latitude = $3, longitude = $4
		WHERE id = $5
	`, b.Name, b.Address, b.Latitude, b.Longitude, b.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes the business and its realtime events in one transaction.
func (r *BusinessRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM realtime_events WHERE business_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *BusinessRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM businesses`).Scan(&n)
	return n, err
}

var _ repository.BusinessRepository = (*BusinessRepository)(nil)
