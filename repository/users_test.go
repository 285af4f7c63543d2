package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/dcode-github/listing_storefront/models"
)

func TestMemoryUserRepository(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, models.User{UserID: "ada", Email: "ada@example.com"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	u, err := repo.FindByUserID(ctx, "ada")
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	if u.Email != "ada@example.com" {
		t.Errorf("email: got %q", u.Email)
	}

	if _, err := repo.FindByUserID(ctx, "bob"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("missing user: got %v, want ErrUserNotFound", err)
	}
}

func TestMemoryUserRepositoryRejectsDuplicates(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()
	_ = repo.Create(ctx, models.User{UserID: "ada", Email: "ada@example.com"})

	tests := []models.User{
		{UserID: "ada", Email: "other@example.com"},
		{UserID: "bob", Email: "ada@example.com"},
	}
	for _, u := range tests {
		if err := repo.Create(ctx, u); !errors.Is(err, ErrUserExists) {
			t.Errorf("Create(%+v): got %v, want ErrUserExists", u, err)
		}
	}
}
