package application

import (
	"context"
	"errors"
	"testing"

	"github.com/kepl/map2-server/internal/domain/entity"
)

func TestPlaceWritesAreAdminOnly(t *testing.T) {
	ctx := context.Background()
	admin := &entity.User{ID: "u-admin", Email: "admin@example.com", Role: entity.RoleAdmin}
	plain := &entity.User{ID: "u-plain", Email: "plain@example.com", Role: entity.RoleUser, IsBusker: true, IsBusiness: true}
	svc := NewPlaceService(newFakeUserRepo(admin, plain), newFakePlaceRepo())

	input := PlaceInput{Name: "Rooftop garden", Latitude: ptrFloat(37.5), Longitude: ptrFloat(127.0)}

	t.Run("capability flags do not grant place writes", func(t *testing.T) {
		if _, err := svc.Create(ctx, plain.ID, entity.PlaceGarden, input); !errors.Is(err, ErrForbidden) {
			t.Fatalf("err = %v, want ErrForbidden", err)
		}
	})

	t.Run("admin can create", func(t *testing.T) {
		p, err := svc.Create(ctx, admin.ID, entity.PlaceGarden, input)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if p.Description != nil || p.ImageURL != nil || p.LinkURL != nil {
			t.Errorf("blank optional fields should store nil: %+v", p)
		}

		if err := svc.Delete(ctx, plain.ID, entity.PlaceGarden, p.ID); !errors.Is(err, ErrForbidden) {
			t.Fatalf("delete err = %v, want ErrForbidden", err)
		}
		if err := svc.Delete(ctx, admin.ID, entity.PlaceGarden, p.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
	})
}

func TestPlaceKindsAreSeparate(t *testing.T) {
	ctx := context.Background()
	admin := &entity.User{ID: "u-admin", Email: "admin@example.com", Role: entity.RoleAdmin}
	svc := NewPlaceService(newFakeUserRepo(admin), newFakePlaceRepo())

	input := PlaceInput{Name: "Pin", Latitude: ptrFloat(37.5), Longitude: ptrFloat(127.0)}
	garden, err := svc.Create(ctx, admin.ID, entity.PlaceGarden, input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Get(ctx, entity.PlaceHotspot, garden.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("a garden id must not resolve as a hotspot, err = %v", err)
	}

	hotspots, err := svc.List(ctx, entity.PlaceHotspot)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(hotspots) != 0 {
		t.Errorf("hotspot layer has %d rows, want 0", len(hotspots))
	}
}

func TestPlaceUpdate(t *testing.T) {
	ctx := context.Background()
	admin := &entity.User{ID: "u-admin", Email: "admin@example.com", Role: entity.RoleAdmin}
	svc := NewPlaceService(newFakeUserRepo(admin), newFakePlaceRepo())

	created, err := svc.Create(ctx, admin.ID, entity.PlaceHotspot, PlaceInput{
		Name: "View point", Latitude: ptrFloat(37.5), Longitude: ptrFloat(127.0),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, admin.ID, entity.PlaceHotspot, created.ID, PlaceInput{
		Name: "View point", Description: "Best at sunset", LinkURL: "https://example.com",
		Latitude: ptrFloat(37.51), Longitude: ptrFloat(127.01),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Description == nil || *updated.Description != "Best at sunset" {
		t.Errorf("Description = %v", updated.Description)
	}
	if updated.LinkURL == nil || *updated.LinkURL != "https://example.com" {
		t.Errorf("LinkURL = %v", updated.LinkURL)
	}
	if updated.Latitude != 37.51 {
		t.Errorf("Latitude = %v", updated.Latitude)
	}
}
