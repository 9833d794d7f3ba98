package services

import (
	"context"
	"testing"

	"repair-app/internal/models"
)

func TestCatalogCRUD(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	admin := env.addUser(t, "adm", "admin@example.com", models.RoleAdmin)
	alice := env.addUser(t, "a1", "alice@example.com", models.RoleClient)

	if _, err := env.catalog.Create(ctx, alice, models.Service{Name: "Zamena ekrana", Price: 3000}); err != models.ErrForbidden {
		t.Fatalf("client created service: err = %v, want ErrForbidden", err)
	}

	service, err := env.catalog.Create(ctx, admin, models.Service{
		Name:     "Zamena ekrana",
		Price:    3000,
		Category: "smartphone",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	price := 3500.0
	updated, err := env.catalog.Update(ctx, admin, service.ID, models.ServiceUpdate{Price: &price})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != price || updated.Name != "Zamena ekrana" {
		t.Errorf("merge wrong: %+v", updated)
	}

	negative := -1.0
	if _, err := env.catalog.Update(ctx, admin, service.ID, models.ServiceUpdate{Price: &negative}); err != models.ErrValidation {
		t.Errorf("negative price: err = %v, want ErrValidation", err)
	}

	list, err := env.catalog.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v, %v", list, err)
	}

	if err := env.catalog.Delete(ctx, alice, service.ID); err != models.ErrForbidden {
		t.Errorf("client deleted service: err = %v", err)
	}
	if err := env.catalog.Delete(ctx, admin, service.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := env.catalog.Delete(ctx, admin, service.ID); err != models.ErrNotFound {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}

	list, err = env.catalog.List(ctx)
	if err != nil || len(list) != 0 {
		t.Fatalf("list after delete: %v, %v", list, err)
	}
}
