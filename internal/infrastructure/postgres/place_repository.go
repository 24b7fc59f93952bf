package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
)

// PlaceRepository backs both curated layers; gardens and hotspots share a
// schema and differ only in table.
type PlaceRepository struct {
	pool *pgxpool.Pool
}

func NewPlaceRepository(pool *pgxpool.Pool) *PlaceRepository {
	return &PlaceRepository{pool: pool}
}

func placeTable(kind entity.PlaceKind) (string, error) {
	switch kind {
	case entity.PlaceGarden:
		return "gardens", nil
	case entity.PlaceHotspot:
		return "hotspots", nil
	default:
		return "", fmt.Errorf("unknown place kind %q", kind)
	}
}

func scanPlace(row pgx.Row) (*entity.Place, error) {
	p := &entity.Place{}
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.LinkURL,
		&p.Latitude, &p.Longitude, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PlaceRepository) Create(ctx context.Context, kind entity.PlaceKind, p *entity.Place) error {
	table, err := placeTable(kind)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO `+table+` (name, description, image_url, link_url, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, p.Name, p.Description, p.ImageURL, p.LinkURL, p.Latitude, p.Longitude).
		Scan(&p.ID, &p.CreatedAt)
}

func (r *PlaceRepository) GetByID(ctx context.Context, kind entity.PlaceKind, id string) (*entity.Place, error) {
	table, err := placeTable(kind)
	if err != nil {
		return nil, err
	}
	return scanPlace(r.pool.QueryRow(ctx, `
		SELECT id, name, description, image_url, link_url, latitude, longitude, created_at
		FROM `+table+` WHERE id = $1
	`, id))
}

func (r *PlaceRepository) List(ctx context.Context, kind entity.PlaceKind) ([]entity.Place, error) {
	table, err := placeTable(kind)
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, image_url, link_url, latitude, longitude, created_at
		FROM `+table+` ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var places []entity.Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		places = append(places, *p)
	}
	return places, rows.Err()
}

func (r *PlaceRepository) Update(ctx context.Context, kind entity.PlaceKind, p *entity.Place) error {
	table, err := placeTable(kind)
	if err != nil {
		return err
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE `+table+`
		SET name = $1, description = $2, image_url = $3, link_url = $4,
		    latitude = $5, longitude = $6
		WHERE id = $7
	`, p.Name, p.Description, p.ImageURL, p.LinkURL, p.Latitude, p.Longitude, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PlaceRepository) Delete(ctx context.Context, kind entity.PlaceKind, id string) error {
	table, err := placeTable(kind)
	if err != nil {
		return err
	}
	res, err := r.pool.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PlaceRepository) Count(ctx context.Context, kind entity.PlaceKind) (int64, error) {
	table, err := placeTable(kind)
	if err != nil {
		return 0, err
	}
	var n int64
	err = r.pool.QueryRow(ctx, `SELECT count(*) FROM `+table).Scan(&n)
	return n, err
}

var _ repository.PlaceRepository = (*PlaceRepository)(nil)
