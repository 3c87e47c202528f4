package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-care-insights/internal/domain/pets"
)

func TestPetRepo_CreateGetList(t *testing.T) {
	ctx := context.Background()
	repo := NewPetRepo()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, p := range []pets.Pet{
		{ID: "b", OwnerUserID: "u1", Name: "Toro", Category: "Dogs", CreatedAt: t0.Add(time.Hour)},
		{ID: "a", OwnerUserID: "u1", Name: "Nube", Category: "Cats", CreatedAt: t0},
		{ID: "c", OwnerUserID: "u2", Name: "Kiwi", Category: "Birds", CreatedAt: t0},
	} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	if err := repo.Create(ctx, pets.Pet{ID: "a"}); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if err := repo.Create(ctx, pets.Pet{ID: " "}); !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
	if repo.Len() != 3 {
		t.Fatalf("expected 3 pets, got %d", repo.Len())
	}

	got, err := repo.GetByID(ctx, "a")
	if err != nil || got.Name != "Nube" {
		t.Fatalf("GetByID: %+v %v", got, err)
	}
	if _, err := repo.GetByID(ctx, "zzz"); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected pets.ErrNotFound, got %v", err)
	}

	list, err := repo.ListByOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "b" {
		t.Fatalf("unexpected list order %+v", list)
	}

	empty, _ := repo.ListByOwner(ctx, "nobody")
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}

func TestPetRepo_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewPetRepo()
	if err := repo.Create(ctx, pets.Pet{ID: "a"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := repo.ListByOwner(ctx, "u1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
