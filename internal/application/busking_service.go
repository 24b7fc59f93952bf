package application

import (
	"context"
	"errors"
	"time"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
)

// BuskingService implements the scheduled street-performance listings.
// Creation is gated on the busker capability flag; edits follow the
// owner-or-admin rule.
type BuskingService struct {
	Users  repository.UserRepository
	Events repository.BuskingRepository

	now func() time.Time
}

func NewBuskingService(users repository.UserRepository, events repository.BuskingRepository) *BuskingService {
	return &BuskingService{Users: users, Events: events, now: time.Now}
}

type BuskingInput struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description" binding:"required"`
	ImageURL    string    `json:"imageUrl"`
	Latitude    *float64  `json:"latitude" binding:"required,latitude"`
	Longitude   *float64  `json:"longitude" binding:"required,longitude"`
	DateTime    time.Time `json:"dateTime" binding:"required"`
}

// List returns upcoming performances only, soonest first.
func (s *BuskingService) List(ctx context.Context) ([]entity.BuskingEvent, error) {
	return s.Events.ListUpcoming(ctx, s.now())
}

func (s *BuskingService) Get(ctx context.Context, id string) (*entity.BuskingEvent, error) {
	e, err := s.Events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *BuskingService) Create(ctx context.Context, callerID string, in BuskingInput) (*entity.BuskingEvent, error) {
	caller, err := resolveCaller(ctx, s.Users, callerID)
	if err != nil {
		return nil, err
	}
	if !caller.IsBusker && !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	if err := futureOnly("dateTime", in.DateTime, s.now()); err != nil {
		return nil, err
	}

	e := &entity.BuskingEvent{
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

func (s *BuskingService) Update(ctx context.Context, callerID, id string, in BuskingInput) (*entity.BuskingEvent, error) {
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

func (s *BuskingService) Delete(ctx context.Context, callerID, id string) error {
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
