package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/kepl/map2-server/internal/domain/entity"
)

type adminFixture struct {
	svc     *AdminService
	users   *fakeUserRepo
	busking *fakeBuskingRepo
	admin   *entity.User
	plain   *entity.User
}

func newAdminFixture() *adminFixture {
	admin := &entity.User{ID: "u-admin", Email: "admin@example.com", Name: "Admin", Role: entity.RoleAdmin}
	plain := &entity.User{ID: "u-plain", Email: "plain@example.com", Name: "Plain", Role: entity.RoleUser}
	users := newFakeUserRepo(admin, plain)
	busking := newFakeBuskingRepo()

	svc := NewAdminService(
		users, busking, newFakeCommunityRepo(), newFakeLessonRepo(),
		newFakeBusinessRepo(), newFakeRealtimeRepo(), newFakeNayogiRepo(),
		newFakePlaceRepo(), newFakePostRepo(),
	)
	svc.now = fixedNow
	return &adminFixture{svc: svc, users: users, busking: busking, admin: admin, plain: plain}
}

func TestAdminStats(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	// Two upcoming and one past performance: the stat counts upcoming only.
	for i, dt := range []time.Time{
		fixedNow().Add(time.Hour),
		fixedNow().Add(2 * time.Hour),
		fixedNow().Add(-time.Hour),
	} {
		e := &entity.BuskingEvent{Name: fmt.Sprintf("e%d", i), UserID: f.plain.ID, DateTime: dt}
		if err := f.busking.Create(ctx, e); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	if err := f.svc.Places.Create(ctx, entity.PlaceGarden, &entity.Place{Name: "Garden"}); err != nil {
		t.Fatalf("seed garden: %v", err)
	}

	st, err := f.svc.Stats(ctx, f.admin.ID)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.TotalUsers != 2 {
		t.Errorf("TotalUsers = %d, want 2", st.TotalUsers)
	}
	if st.TotalBusking != 2 {
		t.Errorf("TotalBusking = %d, want 2 (upcoming only)", st.TotalBusking)
	}
	if st.TotalGarden != 1 || st.TotalHotspot != 0 {
		t.Errorf("garden/hotspot = %d/%d, want 1/0", st.TotalGarden, st.TotalHotspot)
	}
}

func TestAdminStatsPropagatesFailure(t *testing.T) {
	f := newAdminFixture()
	f.users.countErr = errors.New("connection reset")
	if _, err := f.svc.Stats(context.Background(), f.admin.ID); err == nil {
		t.Fatal("expected the failed count to fail the whole call")
	}
}

func TestAdminRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	if _, err := f.svc.Stats(ctx, f.plain.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("Stats err = %v, want ErrForbidden", err)
	}
	if _, err := f.svc.ListUsers(ctx, f.plain.ID, UserQuery{}); !errors.Is(err, ErrForbidden) {
		t.Errorf("ListUsers err = %v, want ErrForbidden", err)
	}
	if _, err := f.svc.UpdateUser(ctx, f.plain.ID, f.admin.ID, UpdateUserInput{}); !errors.Is(err, ErrForbidden) {
		t.Errorf("UpdateUser err = %v, want ErrForbidden", err)
	}
	if _, err := f.svc.Upgrade(ctx, f.plain.ID, f.plain.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("Upgrade err = %v, want ErrForbidden", err)
	}
	if _, err := f.svc.Stats(ctx, ""); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("anonymous Stats err = %v, want ErrUnauthenticated", err)
	}
}

func TestAdminListUsers(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	page, err := f.svc.ListUsers(ctx, f.admin.ID, UserQuery{Search: "plain"})
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if page.Pagination.Total != 1 || len(page.Users) != 1 {
		t.Fatalf("page = %+v, want exactly the matching user", page)
	}
	if page.Users[0].ID != f.plain.ID {
		t.Errorf("got %q, want %q", page.Users[0].ID, f.plain.ID)
	}

	capped, err := f.svc.ListUsers(ctx, f.admin.ID, UserQuery{Limit: 10_000})
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if capped.Pagination.Limit != maxUserLimit {
		t.Errorf("limit = %d, want %d", capped.Pagination.Limit, maxUserLimit)
	}
}

func TestAdminUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("partial edit", func(t *testing.T) {
		f := newAdminFixture()
		name := "Renamed"
		busker := true
		u, err := f.svc.UpdateUser(ctx, f.admin.ID, f.plain.ID, UpdateUserInput{Name: &name, IsBusker: &busker})
		if err != nil {
			t.Fatalf("UpdateUser: %v", err)
		}
		if u.Name != "Renamed" || !u.IsBusker {
			t.Errorf("user = %+v, want renamed busker", u)
		}
		if u.Role != entity.RoleUser || u.IsBusiness {
			t.Errorf("untouched fields changed: %+v", u)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		f := newAdminFixture()
		role := "SUPERUSER"
		if _, err := f.svc.UpdateUser(ctx, f.admin.ID, f.plain.ID, UpdateUserInput{Role: &role}); !errors.Is(err, ErrValidation) {
			t.Fatalf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		f := newAdminFixture()
		if _, err := f.svc.UpdateUser(ctx, f.admin.ID, "ghost", UpdateUserInput{}); !errors.Is(err, ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestAdminUpgrade(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	u, err := f.svc.Upgrade(ctx, f.admin.ID, f.plain.ID)
	if err != nil {
		t.Fatalf("Upgrade: %v", err)
	}
	if u.Role != entity.RoleAdmin || !u.IsBusker || !u.IsBusiness {
		t.Errorf("user = %+v, want admin with both capability flags", u)
	}

	stored, err := f.users.GetByID(ctx, f.plain.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Role != entity.RoleAdmin {
		t.Error("upgrade was not persisted")
	}
}
