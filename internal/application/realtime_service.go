package application

import (
	"context"
	"errors"
	"time"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
)

// RealtimeEventService implements time-windowed business promotions. The
// event must reference a business the caller owns (admins may post to any
// business), start strictly in the future, and end after it starts.
type RealtimeEventService struct {
	Users      repository.UserRepository
	Events     repository.RealtimeEventRepository
	Businesses repository.BusinessRepository

	now func() time.Time
}

func NewRealtimeEventService(users repository.UserRepository, events repository.RealtimeEventRepository, businesses repository.BusinessRepository) *RealtimeEventService {
	return &RealtimeEventService{Users: users, Events: events, Businesses: businesses, now: time.Now}
}

type RealtimeEventInput struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	ImageURL    string    `json:"imageUrl"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	BusinessID  string    `json:"businessId" binding:"required,uuid"`
}

func (in RealtimeEventInput) validateWindow(now time.Time, requireFutureStart bool) error {
	if !in.StartDate.Before(in.EndDate) {
		return validationf("endDate must be after startDate")
	}
	if requireFutureStart {
		return futureOnly("startDate", in.StartDate, now)
	}
	return nil
}

func (s *RealtimeEventService) List(ctx context.Context) ([]entity.RealtimeEvent, error) {
	return s.Events.List(ctx)
}

func (s *RealtimeEventService) Get(ctx context.Context, id string) (*entity.RealtimeEvent, error) {
	e, err := s.Events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// checkBusinessOwnership verifies the target business exists and belongs to
// the caller unless the caller is an admin.
func (s *RealtimeEventService) checkBusinessOwnership(ctx context.Context, caller *entity.User, businessID string) error {
	b, err := s.Businesses.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !caller.CanManage(b.UserID) {
		return ErrForbidden
	}
	return nil
}

func (s *RealtimeEventService) Create(ctx context.Context, callerID string, in RealtimeEventInput) (*entity.RealtimeEvent, error) {
	caller, err := resolveCaller(ctx, s.Users, callerID)
	if err != nil {
		return nil, err
	}
	if !caller.IsBusiness && !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	if err := in.validateWindow(s.now(), true); err != nil {
		return nil, err
	}
	if err := s.checkBusinessOwnership(ctx, caller, in.BusinessID); err != nil {
		return nil, err
	}

	e := &entity.RealtimeEvent{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    normalizeImageURL(in.ImageURL),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		BusinessID:  in.BusinessID,
		UserID:      caller.ID,
	}
	if err := s.Events.Create(ctx, e); err != nil {
		return nil, err
	}
	return s.Events.GetByID(ctx, e.ID)
}

func (s *RealtimeEventService) Update(ctx context.Context, callerID, id string, in RealtimeEventInput) (*entity.RealtimeEvent, error) {
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
	// Past-start edits on an already-running event are allowed; only the
	// window ordering is re-checked here.
	if err := in.validateWindow(s.now(), false); err != nil {
		return nil, err
	}
	if in.BusinessID != e.BusinessID {
		if err := s.checkBusinessOwnership(ctx, caller, in.BusinessID); err != nil {
			return nil, err
		}
	}

	e.Title = in.Title
	e.Description = in.Description
	e.ImageURL = normalizeImageURL(in.ImageURL)
	e.StartDate = in.StartDate
	e.EndDate = in.EndDate
	e.BusinessID = in.BusinessID
	if err := s.Events.Update(ctx, e); err != nil {
		return nil, err
	}
	return s.Events.GetByID(ctx, e.ID)
}

func (s *RealtimeEventService) Delete(ctx context.Context, callerID, id string) error {
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
