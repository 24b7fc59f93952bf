package application

import (
	"context"
	"errors"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
)

// PlaceService covers the two curated map layers (shared gardens and photo
// hotspots). Reads are public; writes are admin-only since the layers are
// editorial content rather than user listings.
type PlaceService struct {
	Users  repository.UserRepository
	Places repository.PlaceRepository
}

func NewPlaceService(users repository.UserRepository, places repository.PlaceRepository) *PlaceService {
	return &PlaceService{Users: users, Places: places}
}

type PlaceInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	LinkURL     string   `json:"linkUrl"`
	Latitude    *float64 `json:"latitude" binding:"required,latitude"`
	Longitude   *float64 `json:"longitude" binding:"required,longitude"`
}

func (s *PlaceService) List(ctx context.Context, kind entity.PlaceKind) ([]entity.Place, error) {
	return s.Places.List(ctx, kind)
}

func (s *PlaceService) Get(ctx context.Context, kind entity.PlaceKind, id string) (*entity.Place, error) {
	p, err := s.Places.GetByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *PlaceService) requireAdmin(ctx context.Context, callerID string) error {
	caller, err := resolveCaller(ctx, s.Users, callerID)
	if err != nil {
		return err
	}
	if !caller.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

func (s *PlaceService) Create(ctx context.Context, callerID string, kind entity.PlaceKind, in PlaceInput) (*entity.Place, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	p := &entity.Place{
		Name:        in.Name,
		Description: optionalString(in.Description),
		ImageURL:    normalizeImageURL(in.ImageURL),
		LinkURL:     optionalString(in.LinkURL),
		Latitude:    *in.Latitude,
		Longitude:   *in.Longitude,
	}
	if err := s.Places.Create(ctx, kind, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PlaceService) Update(ctx context.Context, callerID string, kind entity.PlaceKind, id string, in PlaceInput) (*entity.Place, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	p, err := s.Places.GetByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.Name = in.Name
	p.Description = optionalString(in.Description)
	p.ImageURL = normalizeImageURL(in.ImageURL)
	p.LinkURL = optionalString(in.LinkURL)
	p.Latitude = *in.Latitude
	p.Longitude = *in.Longitude
	if err := s.Places.Update(ctx, kind, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PlaceService) Delete(ctx context.Context, callerID string, kind entity.PlaceKind, id string) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	if err := s.Places.Delete(ctx, kind, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
