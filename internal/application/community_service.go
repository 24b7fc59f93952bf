package application

import (
	"context"
	"errors"
	"time"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
)

// CommunityService implements neighborhood meetup listings. Any
// authenticated user may create one; no capability flag applies.
type CommunityService struct {
	Users  repository.UserRepository
	Events repository.CommunityRepository

	now func() time.Time
}

func NewCommunityService(users repository.UserRepository, events repository.CommunityRepository) *CommunityService {
	return &CommunityService{Users: users, Events: events, now: time.Now}
}

type CommunityInput struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description" binding:"required"`
	ImageURL    string    `json:"imageUrl"`
	Latitude    *float64  `json:"latitude" binding:"required,latitude"`
	Longitude   *float64  `json:"longitude" binding:"required,longitude"`
	DateTime    time.Time `json:"dateTime" binding:"required"`
}

func (s *CommunityService) List(ctx context.Context) ([]entity.CommunityEvent, error) {
	return s.Events.List(ctx)
}

func (s *CommunityService) Get(ctx context.Context, id string) (*entity.CommunityEvent, error) {
	e, err := s.Events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *CommunityService) Create(ctx context.Context, callerID string, in CommunityInput) (*entity.CommunityEvent, error) {
	caller, err := resolveCaller(ctx, s.Users, callerID)
	if err != nil {
		return nil, err
	}
	if err := futureOnly("dateTime", in.DateTime, s.now()); err != nil {
		return nil, err
	}

	e := &entity.CommunityEvent{
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    normalizeImageURL(in.ImageURL),
		Latitude:    *in.Latitude,
		Longitude:   *in.Longitude,
		DateTime:    in.DateTime,
		UserID:      caller.ID,
	}
	if err := s.Events.Create(ctx, e); err != nil {
		return nil, err
	}
	return s.Events.GetByID(ctx, e.ID)
}

func (s *CommunityService) Update(ctx context.Context, callerID, id string, in CommunityInput) (*entity.CommunityEvent, error) {
	caller, err := resolveCaller(ctx, s.Users, callerID)
	if err != nil {
		return nil, err
	}
	e, err := s.Events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !caller.CanManage(e.UserID) {
		return nil, ErrForbidden
	}
	if err := futureOnly("dateTime", in.DateTime, s.now()); err != nil {
		return nil, err
	}

	e.Name = in.Name
	e.Description = in.Description
	e.ImageURL = normalizeImageURL(in.ImageURL)
	e.Latitude = *in.Latitude
	e.Longitude = *in.Longitude
	e.DateTime = in.DateTime
	if err := s.Events.Update(ctx, e); err != nil {
		return nil, err
	}
	return s.Events.GetByID(ctx, e.ID)
}

func (s *CommunityService) Delete(ctx context.Context, callerID, id string) error {
	caller, err := resolveCaller(ctx, s.Users, callerID)
	if err != nil {
		return err
	}
	e, err := s.Events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !caller.CanManage(e.UserID) {
		return ErrForbidden
	}
	return s.Events.Delete(ctx, id)
}
