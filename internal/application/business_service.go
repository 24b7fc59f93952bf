package application

import (
	"context"
	"errors"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
)

// BusinessService implements storefront listings. Creation requires the
// business capability flag; a business name is unique per owner; deleting a
// business takes its realtime events with it.
type BusinessService struct {
	Users      repository.UserRepository
	Businesses repository.BusinessRepository
}

func NewBusinessService(users repository.UserRepository, businesses repository.BusinessRepository) *BusinessService {
	return &BusinessService{Users: users, Businesses: businesses}
}

type BusinessInput struct {
	Name      string   `json:"name" binding:"required"`
	Address   string   `json:"address" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"required,latitude"`
	Longitude *float64 `json:"longitude" binding:"required,longitude"`
}

func (s *BusinessService) List(ctx context.Context) ([]entity.Business, error) {
	return s.Businesses.List(ctx)
}

// Get returns one business with its realtime events attached.
func (s *BusinessService) Get(ctx context.Context, id string) (*entity.Business, error) {
	b, err := s.Businesses.GetWithEvents(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *BusinessService) Create(ctx context.Context, callerID string, in BusinessInput) (*entity.Business, error) {
	caller, err := resolveCaller(ctx, s.Users, callerID)
	if err != nil {
		return nil, err
	}
	if !caller.IsBusiness && !caller.IsAdmin() {
		return nil, ErrForbidden
	}

	b := &entity.Business{
		Name:      in.Name,
		Address:   in.Address,
		Latitude:  *in.Latitude,
		Longitude: *in.Longitude,
		UserID:    caller.ID,
	}
	if err := s.Businesses.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return s.Businesses.GetByID(ctx, b.ID)
}

func (s *BusinessService) Update(ctx context.Context, callerID, id string, in BusinessInput) (*entity.Business, error) {
	caller, err := resolveCaller(ctx, s.Users, callerID)
	if err != nil {
		return nil, err
	}
	b, err := s.Businesses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !caller.CanManage(b.UserID) {
		return nil, ErrForbidden
	}

	b.Name = in.Name
	b.Address = in.Address
	b.Latitude = *in.Latitude
	b.Longitude = *in.Longitude
	if err := s.Businesses.Update(ctx, b); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return s.Businesses.GetByID(ctx, b.ID)
}

func (s *BusinessService) Delete(ctx context.Context, callerID, id string) error {
	caller, err := resolveCaller(ctx, s.Users, callerID)
	if err != nil {
		return err
	}
	b, err := s.Businesses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !caller.CanManage(b.UserID) {
		return ErrForbidden
	}
	return s.Businesses.Delete(ctx, id)
}
