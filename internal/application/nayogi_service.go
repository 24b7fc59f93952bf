package application

import (
	"context"
	"errors"
	"time"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
	"github.com/sirupsen/logrus"
)

// NayogiService manages giveaway pins that disappear 24h after their last
// edit. Expired rows are purged lazily whenever the list is read.
type NayogiService struct {
	Users  repository.UserRepository
	Events repository.NayogiRepository
	Logger *logrus.Logger

	now func() time.Time
}

func NewNayogiService(users repository.UserRepository, events repository.NayogiRepository, logger *logrus.Logger) *NayogiService {
	return &NayogiService{Users: users, Events: events, Logger: logger, now: time.Now}
}

type NayogiInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	ImageURL    string   `json:"imageUrl"`
	Latitude    *float64 `json:"latitude" binding:"required,latitude"`
	Longitude   *float64 `json:"longitude" binding:"required,longitude"`
}

// List purges lapsed rows first so clients never see an expired giveaway.
func (s *NayogiService) List(ctx context.Context) ([]entity.NayogiEvent, error) {
	now := s.now()
	if n, err := s.Events.PurgeExpired(ctx, now); err != nil {
		// Purge failure is not fatal for reads; the active filter below
		// still hides expired rows.
		s.Logger.WithError(err).Warn("nayogi purge failed")
	} else if n > 0 {
		s.Logger.WithField("purged", n).Debug("nayogi events purged")
	}
	return s.Events.ListActive(ctx, now)
}

func (s *NayogiService) Get(ctx context.Context, id string) (*entity.NayogiEvent, error) {
	e, err := s.Events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if e.Expired(s.now()) {
		return nil, ErrNotFound
	}
	return e, nil
}

func (s *NayogiService) Create(ctx context.Context, callerID string, in NayogiInput) (*entity.NayogiEvent, error) {
	caller, err := resolveCaller(ctx, s.Users, callerID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	e := &entity.NayogiEvent{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    normalizeImageURL(in.ImageURL),
		Latitude:    *in.Latitude,
		Longitude:   *in.Longitude,
		UserID:      caller.ID,
		ExpiresAt:   now.Add(entity.NayogiTTL),
	}
	if err := s.Events.Create(ctx, e); err != nil {
		return nil, err
	}
	return s.Events.GetByID(ctx, e.ID)
}

// Update refreshes the expiry clock: an edit buys the giveaway another 24h.
// Editing an already-expired row fails instead of resurrecting it.
func (s *NayogiService) Update(ctx context.Context, callerID, id string, in NayogiInput) (*entity.NayogiEvent, error) {
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
	now := s.now()
	if e.Expired(now) {
		return nil, ErrExpired
	}

	e.Title = in.Title
	e.Description = in.Description
	e.ImageURL = normalizeImageURL(in.ImageURL)
	e.Latitude = *in.Latitude
	e.Longitude = *in.Longitude
	e.ExpiresAt = now.Add(entity.NayogiTTL)
	if err := s.Events.Update(ctx, e); err != nil {
		return nil, err
	}
	return s.Events.GetByID(ctx, e.ID)
}

func (s *NayogiService) Delete(ctx context.Context, callerID, id string) error {
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
