package application

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
)

const (
	defaultUserLimit = 20
	maxUserLimit     = 100
)

// AdminService backs the dashboard: aggregate counts, user management and
// the account-upgrade flow. Callers are expected to have passed the admin
// middleware already; services still re-check so the rule holds even when a
// route is wired without it.
type AdminService struct {
	Users      repository.UserRepository
	Busking    repository.BuskingRepository
	Community  repository.CommunityRepository
	Lessons    repository.LessonRepository
	Businesses repository.BusinessRepository
	Events     repository.RealtimeEventRepository
	Nayogi     repository.NayogiRepository
	Places     repository.PlaceRepository
	Posts      repository.PostRepository

	now func() time.Time
}

func NewAdminService(
	users repository.UserRepository,
	busking repository.BuskingRepository,
	community repository.CommunityRepository,
	lessons repository.LessonRepository,
	businesses repository.BusinessRepository,
	events repository.RealtimeEventRepository,
	nayogi repository.NayogiRepository,
	places repository.PlaceRepository,
	posts repository.PostRepository,
) *AdminService {
	return &AdminService{
		Users:      users,
		Busking:    busking,
		Community:  community,
		Lessons:    lessons,
		Businesses: businesses,
		Events:     events,
		Nayogi:     nayogi,
		Places:     places,
		Posts:      posts,
		now:        time.Now,
	}
}

func (s *AdminService) requireAdmin(ctx context.Context, callerID string) (*entity.User, error) {
	caller, err := resolveCaller(ctx, s.Users, callerID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	return caller, nil
}

// Stats fans the ten table counts out concurrently and fails as a whole if
// any single count fails.
func (s *AdminService) Stats(ctx context.Context, callerID string) (*entity.Stats, error) {
	if _, err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	var st entity.Stats
	g, gctx := errgroup.WithContext(ctx)
	now := s.now()

	g.Go(func() (err error) { st.TotalUsers, err = s.Users.Count(gctx); return })
	g.Go(func() (err error) { st.TotalPosts, err = s.Posts.Count(gctx); return })
	g.Go(func() (err error) { st.TotalBusking, err = s.Busking.CountUpcoming(gctx, now); return })
	g.Go(func() (err error) { st.TotalBusiness, err = s.Businesses.Count(gctx); return })
	g.Go(func() (err error) { st.TotalEvents, err = s.Events.Count(gctx); return })
	g.Go(func() (err error) { st.TotalCommunity, err = s.Community.Count(gctx); return })
	g.Go(func() (err error) { st.TotalLesson, err = s.Lessons.Count(gctx); return })
	g.Go(func() (err error) { st.TotalNayogi, err = s.Nayogi.Count(gctx); return })
	g.Go(func() (err error) { st.TotalGarden, err = s.Places.Count(gctx, entity.PlaceGarden); return })
	g.Go(func() (err error) { st.TotalHotspot, err = s.Places.Count(gctx, entity.PlaceHotspot); return })

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &st, nil
}

type UserQuery struct {
	Search string
	Page   int
	Limit  int
}

type UserPage struct {
	Users      []entity.User `json:"users"`
	Pagination Pagination    `json:"pagination"`
}

func (s *AdminService) ListUsers(ctx context.Context, callerID string, q UserQuery) (*UserPage, error) {
	if _, err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = defaultUserLimit
	}
	if q.Limit > maxUserLimit {
		q.Limit = maxUserLimit
	}
	users, total, err := s.Users.List(ctx, q.Search, q.Limit, (q.Page-1)*q.Limit)
	if err != nil {
		return nil, err
	}
	return &UserPage{Users: users, Pagination: newPagination(int(total), q.Page, q.Limit)}, nil
}

type UpdateUserInput struct {
	Name       *string `json:"name"`
	Role       *string `json:"role"`
	IsBusker   *bool   `json:"isBusker"`
	IsBusiness *bool   `json:"isBusiness"`
}

// UpdateUser applies a partial edit to another user's account flags.
func (s *AdminService) UpdateUser(ctx context.Context, callerID, userID string, in UpdateUserInput) (*entity.User, error) {
	if _, err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Role != nil {
		switch entity.Role(*in.Role) {
		case entity.RoleAdmin, entity.RoleUser:
			u.Role = entity.Role(*in.Role)
		default:
			return nil, validationf("unknown role %q", *in.Role)
		}
	}
	if in.IsBusker != nil {
		u.IsBusker = *in.IsBusker
	}
	if in.IsBusiness != nil {
		u.IsBusiness = *in.IsBusiness
	}
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Upgrade promotes an account to admin with both capability flags set.
func (s *AdminService) Upgrade(ctx context.Context, callerID, userID string) (*entity.User, error) {
	if _, err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.Role = entity.RoleAdmin
	u.IsBusker = true
	u.IsBusiness = true
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
