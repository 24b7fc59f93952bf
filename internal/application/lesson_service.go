package application

import (
	"context"
	"errors"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
)

// LessonService implements lesson-offer listings. Lessons carry a free-form
// category label and no schedule.
type LessonService struct {
	Users   repository.UserRepository
	Lessons repository.LessonRepository
}

func NewLessonService(users repository.UserRepository, lessons repository.LessonRepository) *LessonService {
	return &LessonService{Users: users, Lessons: lessons}
}

type LessonInput struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description" binding:"required"`
	ImageURL    string   `json:"imageUrl"`
	Latitude    *float64 `json:"latitude" binding:"required,latitude"`
	Longitude   *float64 `json:"longitude" binding:"required,longitude"`
}

func (s *LessonService) List(ctx context.Context) ([]entity.LessonEvent, error) {
	return s.Lessons.List(ctx)
}

func (s *LessonService) Get(ctx context.Context, id string) (*entity.LessonEvent, error) {
	e, err := s.Lessons.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *LessonService) Create(ctx context.Context, callerID string, in LessonInput) (*entity.LessonEvent, error) {
	caller, err := resolveCaller(ctx, s.Users, callerID)
	if err != nil {
		return nil, err
	}

	e := &entity.LessonEvent{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		ImageURL:    normalizeImageURL(in.ImageURL),
		Latitude:    *in.Latitude,
		Longitude:   *in.Longitude,
		UserID:      caller.ID,
	}
	if err := s.Lessons.Create(ctx, e); err != nil {
		return nil, err
	}
	return s.Lessons.GetByID(ctx, e.ID)
}

func (s *LessonService) Update(ctx context.Context, callerID, id string, in LessonInput) (*entity.LessonEvent, error) {
	caller, err := resolveCaller(ctx, s.Users, callerID)
	if err != nil {
		return nil, err
	}
	e, err := s.Lessons.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !caller.CanManage(e.UserID) {
		return nil, ErrForbidden
	}

	e.Name = in.Name
	e.Category = in.Category
	e.Description = in.Description
	e.ImageURL = normalizeImageURL(in.ImageURL)
	e.Latitude = *in.Latitude
	e.Longitude = *in.Longitude
	if err := s.Lessons.Update(ctx, e); err != nil {
		return nil, err
	}
	return s.Lessons.GetByID(ctx, e.ID)
}

func (s *LessonService) Delete(ctx context.Context, callerID, id string) error {
	caller, err := resolveCaller(ctx, s.Users, callerID)
	if err != nil {
		return err
	}
	e, err := s.Lessons.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !caller.CanManage(e.UserID) {
		return ErrForbidden
	}
	return s.Lessons.Delete(ctx, id)
}
