package application

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
)

// In-memory repositories backing the service tests. They mirror the
// Postgres implementations' contract: copies out, ErrNotFound on misses,
// ErrDuplicate on uniqueness violations.

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func ptrFloat(f float64) *float64 { return &f }

type fakeUserRepo struct {
	users    []*entity.User
	seq      int
	countErr error
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{}
	for _, u := range users {
		cp := *u
		r.users = append(r.users, &cp)
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, e := range r.users {
		if strings.EqualFold(e.Email, u.Email) {
			return repository.ErrDuplicate
		}
	}
	r.seq++
	if u.ID == "" {
		u.ID = fmt.Sprintf("user-%d", r.seq)
	}
	u.CreatedAt = fixedNow()
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	for i, e := range r.users {
		if e.ID == u.ID {
			cp := *u
			r.users[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeUserRepo) List(_ context.Context, search string, limit, offset int) ([]entity.User, int64, error) {
	var matched []entity.User
	q := strings.ToLower(search)
	for _, u := range r.users {
		if q == "" || strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Email), q) {
			matched = append(matched, *u)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return []entity.User{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return int64(len(r.users)), nil
}

type fakeBuskingRepo struct {
	events map[string]*entity.BuskingEvent
	seq    int
}

var _ repository.BuskingRepository = (*fakeBuskingRepo)(nil)

func newFakeBuskingRepo() *fakeBuskingRepo {
	return &fakeBuskingRepo{events: map[string]*entity.BuskingEvent{}}
}

func (r *fakeBuskingRepo) Create(_ context.Context, e *entity.BuskingEvent) error {
	r.seq++
	e.ID = fmt.Sprintf("busking-%d", r.seq)
	e.CreatedAt = fixedNow()
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeBuskingRepo) GetByID(_ context.Context, id string) (*entity.BuskingEvent, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeBuskingRepo) ListUpcoming(_ context.Context, from time.Time) ([]entity.BuskingEvent, error) {
	var out []entity.BuskingEvent
	for _, e := range r.events {
		if !e.DateTime.Before(from) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateTime.Before(out[j].DateTime) })
	return out, nil
}

func (r *fakeBuskingRepo) Update(_ context.Context, e *entity.BuskingEvent) error {
	if _, ok := r.events[e.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeBuskingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *fakeBuskingRepo) CountUpcoming(ctx context.Context, from time.Time) (int64, error) {
	list, err := r.ListUpcoming(ctx, from)
	return int64(len(list)), err
}

type fakeCommunityRepo struct {
	events map[string]*entity.CommunityEvent
	seq    int
}

var _ repository.CommunityRepository = (*fakeCommunityRepo)(nil)

func newFakeCommunityRepo() *fakeCommunityRepo {
	return &fakeCommunityRepo{events: map[string]*entity.CommunityEvent{}}
}

func (r *fakeCommunityRepo) Create(_ context.Context, e *entity.CommunityEvent) error {
	r.seq++
	e.ID = fmt.Sprintf("community-%d", r.seq)
	e.CreatedAt = fixedNow()
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeCommunityRepo) GetByID(_ context.Context, id string) (*entity.CommunityEvent, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeCommunityRepo) List(_ context.Context) ([]entity.CommunityEvent, error) {
	var out []entity.CommunityEvent
	for _, e := range r.events {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeCommunityRepo) Update(_ context.Context, e *entity.CommunityEvent) error {
	if _, ok := r.events[e.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeCommunityRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *fakeCommunityRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.events)), nil
}

type fakeLessonRepo struct {
	events map[string]*entity.LessonEvent
	seq    int
}

var _ repository.LessonRepository = (*fakeLessonRepo)(nil)

func newFakeLessonRepo() *fakeLessonRepo {
	return &fakeLessonRepo{events: map[string]*entity.LessonEvent{}}
}

func (r *fakeLessonRepo) Create(_ context.Context, e *entity.LessonEvent) error {
	r.seq++
	e.ID = fmt.Sprintf("lesson-%d", r.seq)
	e.CreatedAt = fixedNow()
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeLessonRepo) GetByID(_ context.Context, id string) (*entity.LessonEvent, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeLessonRepo) List(_ context.Context) ([]entity.LessonEvent, error) {
	var out []entity.LessonEvent
	for _, e := range r.events {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeLessonRepo) Update(_ context.Context, e *entity.LessonEvent) error {
	if _, ok := r.events[e.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeLessonRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *fakeLessonRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.events)), nil
}

type fakeBusinessRepo struct {
	businesses map[string]*entity.Business
	events     *fakeRealtimeRepo // optional; Delete cascades into it
	seq        int
}

var _ repository.BusinessRepository = (*fakeBusinessRepo)(nil)

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{businesses: map[string]*entity.Business{}}
}

func (r *fakeBusinessRepo) nameTaken(b *entity.Business) bool {
	for _, e := range r.businesses {
		if e.ID != b.ID && e.UserID == b.UserID && strings.EqualFold(e.Name, b.Name) {
			return true
		}
	}
	return false
}

func (r *fakeBusinessRepo) Create(_ context.Context, b *entity.Business) error {
	if r.nameTaken(b) {
		return repository.ErrDuplicate
	}
	r.seq++
	b.ID = fmt.Sprintf("business-%d", r.seq)
	b.CreatedAt = fixedNow()
	cp := *b
	r.businesses[b.ID] = &cp
	return nil
}

func (r *fakeBusinessRepo) GetByID(_ context.Context, id string) (*entity.Business, error) {
	b, ok := r.businesses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBusinessRepo) GetWithEvents(ctx context.Context, id string) (*entity.Business, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeBusinessRepo) List(_ context.Context) ([]entity.Business, error) {
	var out []entity.Business
	for _, b := range r.businesses {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBusinessRepo) Update(_ context.Context, b *entity.Business) error {
	if _, ok := r.businesses[b.ID]; !ok {
		return repository.ErrNotFound
	}
	if r.nameTaken(b) {
		return repository.ErrDuplicate
	}
	cp := *b
	r.businesses[b.ID] = &cp
	return nil
}

// Delete drops the business and its realtime events, matching the
// transactional delete the SQL repository performs.
func (r *fakeBusinessRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.businesses[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.businesses, id)
	if r.events != nil {
		for eid, e := range r.events.events {
			if e.BusinessID == id {
				delete(r.events.events, eid)
			}
		}
	}
	return nil
}

func (r *fakeBusinessRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.businesses)), nil
}

type fakeRealtimeRepo struct {
	events map[string]*entity.RealtimeEvent
	seq    int
}

var _ repository.RealtimeEventRepository = (*fakeRealtimeRepo)(nil)

func newFakeRealtimeRepo() *fakeRealtimeRepo {
	return &fakeRealtimeRepo{events: map[string]*entity.RealtimeEvent{}}
}

func (r *fakeRealtimeRepo) Create(_ context.Context, e *entity.RealtimeEvent) error {
	r.seq++
	e.ID = fmt.Sprintf("event-%d", r.seq)
	e.CreatedAt = fixedNow()
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeRealtimeRepo) GetByID(_ context.Context, id string) (*entity.RealtimeEvent, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeRealtimeRepo) List(_ context.Context) ([]entity.RealtimeEvent, error) {
	var out []entity.RealtimeEvent
	for _, e := range r.events {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeRealtimeRepo) Update(_ context.Context, e *entity.RealtimeEvent) error {
	if _, ok := r.events[e.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeRealtimeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *fakeRealtimeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.events)), nil
}

type fakeNayogiRepo struct {
	events   map[string]*entity.NayogiEvent
	seq      int
	purgeErr error
	purged   int64
}

var _ repository.NayogiRepository = (*fakeNayogiRepo)(nil)

func newFakeNayogiRepo() *fakeNayogiRepo {
	return &fakeNayogiRepo{events: map[string]*entity.NayogiEvent{}}
}

func (r *fakeNayogiRepo) Create(_ context.Context, e *entity.NayogiEvent) error {
	r.seq++
	e.ID = fmt.Sprintf("nayogi-%d", r.seq)
	e.CreatedAt = fixedNow()
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeNayogiRepo) GetByID(_ context.Context, id string) (*entity.NayogiEvent, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeNayogiRepo) ListActive(_ context.Context, now time.Time) ([]entity.NayogiEvent, error) {
	var out []entity.NayogiEvent
	for _, e := range r.events {
		if !e.Expired(now) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeNayogiRepo) PurgeExpired(_ context.Context, now time.Time) (int64, error) {
	if r.purgeErr != nil {
		return 0, r.purgeErr
	}
	var n int64
	for id, e := range r.events {
		if e.Expired(now) {
			delete(r.events, id)
			n++
		}
	}
	r.purged += n
	return n, nil
}

func (r *fakeNayogiRepo) Update(_ context.Context, e *entity.NayogiEvent) error {
	if _, ok := r.events[e.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeNayogiRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *fakeNayogiRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.events)), nil
}

type fakePlaceRepo struct {
	places map[entity.PlaceKind]map[string]*entity.Place
	seq    int
}

var _ repository.PlaceRepository = (*fakePlaceRepo)(nil)

func newFakePlaceRepo() *fakePlaceRepo {
	return &fakePlaceRepo{places: map[entity.PlaceKind]map[string]*entity.Place{
		entity.PlaceGarden:  {},
		entity.PlaceHotspot: {},
	}}
}

func (r *fakePlaceRepo) Create(_ context.Context, kind entity.PlaceKind, p *entity.Place) error {
	r.seq++
	p.ID = fmt.Sprintf("%s-%d", kind, r.seq)
	p.CreatedAt = fixedNow()
	cp := *p
	r.places[kind][p.ID] = &cp
	return nil
}

func (r *fakePlaceRepo) GetByID(_ context.Context, kind entity.PlaceKind, id string) (*entity.Place, error) {
	p, ok := r.places[kind][id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePlaceRepo) List(_ context.Context, kind entity.PlaceKind) ([]entity.Place, error) {
	var out []entity.Place
	for _, p := range r.places[kind] {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePlaceRepo) Update(_ context.Context, kind entity.PlaceKind, p *entity.Place) error {
	if _, ok := r.places[kind][p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	r.places[kind][p.ID] = &cp
	return nil
}

func (r *fakePlaceRepo) Delete(_ context.Context, kind entity.PlaceKind, id string) error {
	if _, ok := r.places[kind][id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.places[kind], id)
	return nil
}

func (r *fakePlaceRepo) Count(_ context.Context, kind entity.PlaceKind) (int64, error) {
	return int64(len(r.places[kind])), nil
}

type fakePostRepo struct {
	posts map[string]*entity.Post
	seq   int
}

var _ repository.PostRepository = (*fakePostRepo)(nil)

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]*entity.Post{}}
}

func (r *fakePostRepo) Create(_ context.Context, p *entity.Post) error {
	r.seq++
	p.ID = fmt.Sprintf("post-%d", r.seq)
	p.CreatedAt = fixedNow().Add(time.Duration(r.seq) * time.Second)
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id string) (*entity.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) List(_ context.Context, f repository.PostFilter, limit, offset int) ([]entity.Post, int64, error) {
	var matched []entity.Post
	q := strings.ToLower(f.Search)
	for _, p := range r.posts {
		if f.Category != nil && p.Category != *f.Category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Title), q) && !strings.Contains(strings.ToLower(p.Content), q) {
			continue
		}
		matched = append(matched, *p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	total := int64(len(matched))
	if offset >= len(matched) {
		return []entity.Post{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakePostRepo) Update(_ context.Context, p *entity.Post) error {
	if _, ok := r.posts[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.posts)), nil
}
