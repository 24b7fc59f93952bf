package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kepl/map2-server/internal/domain/entity"
)

func newBuskingService(users *fakeUserRepo, events *fakeBuskingRepo) *BuskingService {
	s := NewBuskingService(users, events)
	s.now = fixedNow
	return s
}

func TestBuskingCreate(t *testing.T) {
	ctx := context.Background()
	busker := &entity.User{ID: "u-busker", Email: "busker@example.com", Name: "Busker", Role: entity.RoleUser, IsBusker: true}
	plain := &entity.User{ID: "u-plain", Email: "plain@example.com", Name: "Plain", Role: entity.RoleUser}
	admin := &entity.User{ID: "u-admin", Email: "admin@example.com", Name: "Admin", Role: entity.RoleAdmin}

	input := BuskingInput{
		Name:        "Evening set",
		Description: "Acoustic covers by the river",
		Latitude:    ptrFloat(37.55),
		Longitude:   ptrFloat(126.92),
		DateTime:    fixedNow().Add(48 * time.Hour),
	}

	t.Run("busker can create", func(t *testing.T) {
		svc := newBuskingService(newFakeUserRepo(busker, plain, admin), newFakeBuskingRepo())
		e, err := svc.Create(ctx, busker.ID, input)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if e.ID == "" {
			t.Error("expected assigned id")
		}
		if e.UserID != busker.ID {
			t.Errorf("UserID = %q, want %q", e.UserID, busker.ID)
		}
		if e.ImageURL != nil {
			t.Errorf("blank image should store nil, got %q", *e.ImageURL)
		}
	})

	t.Run("admin can create without the flag", func(t *testing.T) {
		svc := newBuskingService(newFakeUserRepo(busker, plain, admin), newFakeBuskingRepo())
		if _, err := svc.Create(ctx, admin.ID, input); err != nil {
			t.Fatalf("Create: %v", err)
		}
	})

	t.Run("non-busker is rejected", func(t *testing.T) {
		svc := newBuskingService(newFakeUserRepo(busker, plain, admin), newFakeBuskingRepo())
		if _, err := svc.Create(ctx, plain.ID, input); !errors.Is(err, ErrForbidden) {
			t.Fatalf("err = %v, want ErrForbidden", err)
		}
	})

	t.Run("past date is rejected", func(t *testing.T) {
		svc := newBuskingService(newFakeUserRepo(busker, plain, admin), newFakeBuskingRepo())
		past := input
		past.DateTime = fixedNow().Add(-time.Hour)
		if _, err := svc.Create(ctx, busker.ID, past); !errors.Is(err, ErrValidation) {
			t.Fatalf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("unknown caller is unauthenticated", func(t *testing.T) {
		svc := newBuskingService(newFakeUserRepo(busker, plain, admin), newFakeBuskingRepo())
		if _, err := svc.Create(ctx, "ghost", input); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("err = %v, want ErrUnauthenticated", err)
		}
		if _, err := svc.Create(ctx, "", input); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("empty caller err = %v, want ErrUnauthenticated", err)
		}
	})
}

func TestBuskingListUpcomingOnly(t *testing.T) {
	ctx := context.Background()
	busker := &entity.User{ID: "u-busker", Email: "busker@example.com", Role: entity.RoleUser, IsBusker: true}
	events := newFakeBuskingRepo()
	svc := newBuskingService(newFakeUserRepo(busker), events)

	// One upcoming and one already-past row; the past row goes straight
	// into the repo since Create would reject it.
	if _, err := svc.Create(ctx, busker.ID, BuskingInput{
		Name: "Upcoming", Description: "d",
		Latitude: ptrFloat(37.5), Longitude: ptrFloat(127.0),
		DateTime: fixedNow().Add(time.Hour),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := events.Create(ctx, &entity.BuskingEvent{
		Name: "Past", Description: "d", UserID: busker.ID,
		DateTime: fixedNow().Add(-time.Hour),
	}); err != nil {
		t.Fatalf("seed past row: %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	if list[0].Name != "Upcoming" {
		t.Errorf("got %q, want the upcoming event", list[0].Name)
	}
}

func TestBuskingUpdateOwnership(t *testing.T) {
	ctx := context.Background()
	owner := &entity.User{ID: "u-owner", Email: "owner@example.com", Role: entity.RoleUser, IsBusker: true}
	other := &entity.User{ID: "u-other", Email: "other@example.com", Role: entity.RoleUser, IsBusker: true}
	admin := &entity.User{ID: "u-admin", Email: "admin@example.com", Role: entity.RoleAdmin}
	svc := newBuskingService(newFakeUserRepo(owner, other, admin), newFakeBuskingRepo())

	input := BuskingInput{
		Name: "Set", Description: "d",
		Latitude: ptrFloat(37.5), Longitude: ptrFloat(127.0),
		DateTime: fixedNow().Add(time.Hour),
	}
	created, err := svc.Create(ctx, owner.ID, input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	edit := input
	edit.Name = "Renamed"

	t.Run("stranger cannot update", func(t *testing.T) {
		if _, err := svc.Update(ctx, other.ID, created.ID, edit); !errors.Is(err, ErrForbidden) {
			t.Fatalf("err = %v, want ErrForbidden", err)
		}
	})

	t.Run("admin can update", func(t *testing.T) {
		e, err := svc.Update(ctx, admin.ID, created.ID, edit)
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if e.Name != "Renamed" {
			t.Errorf("Name = %q, want Renamed", e.Name)
		}
		if e.UserID != owner.ID {
			t.Errorf("admin edit must not reassign ownership, UserID = %q", e.UserID)
		}
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		if err := svc.Delete(ctx, other.ID, created.ID); !errors.Is(err, ErrForbidden) {
			t.Fatalf("err = %v, want ErrForbidden", err)
		}
	})

	t.Run("owner can delete", func(t *testing.T) {
		if err := svc.Delete(ctx, owner.ID, created.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := svc.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Get after delete = %v, want ErrNotFound", err)
		}
	})

	t.Run("missing row maps to ErrNotFound", func(t *testing.T) {
		if _, err := svc.Update(ctx, owner.ID, "nope", edit); !errors.Is(err, ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})
}
