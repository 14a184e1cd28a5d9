package services

import (
	"errors"
	"testing"

	"github.com/Rakhulsr/go-marketplace/app/cache"
	"github.com/Rakhulsr/go-marketplace/app/errs"
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/other"
)

func TestCategoryCreateAndDisplayOrder(t *testing.T) {
	e := newTestEnv(t)
	svc := NewCategoryService(e.category, e.cache)

	first, err := svc.Create(e.ctx, other.CategoryRequest{Name: "Keyboard", IsTechnical: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(e.ctx, other.CategoryRequest{Name: "Mouse"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.DisplayOrder != 0 || second.DisplayOrder != 1 {
		t.Errorf("display orders = %d, %d", first.DisplayOrder, second.DisplayOrder)
	}
	if first.Slug != "keyboard" {
		t.Errorf("slug = %q", first.Slug)
	}

	seven := 7
	third, err := svc.Create(e.ctx, other.CategoryRequest{Name: "Headset", DisplayOrder: &seven})
	if err != nil || third.DisplayOrder != 7 {
		t.Fatalf("explicit display order: %+v, %v", third, err)
	}

	if _, err := svc.Create(e.ctx, other.CategoryRequest{Name: "keyboard"}); !errors.Is(err, errs.ErrConflict) {
		t.Errorf("duplicate name: got %v", err)
	}
	if _, err := svc.Update(e.ctx, second.ID, other.CategoryRequest{Name: "KEYBOARD"}); !errors.Is(err, errs.ErrConflict) {
		t.Errorf("rename onto an existing name: got %v", err)
	}
	if _, err := svc.Update(e.ctx, first.ID, other.CategoryRequest{Name: "Keyboard", IsTechnical: false}); err != nil {
		t.Errorf("keeping the own name must be allowed: %v", err)
	}

	rows, err := svc.ListAdmin(e.ctx)
	if err != nil || len(rows) != 3 {
		t.Fatalf("ListAdmin = %+v, %v", rows, err)
	}
}

func TestCategoryDeleteRestricted(t *testing.T) {
	e := newTestEnv(t)
	svc := NewCategoryService(e.category, e.cache)
	seller := e.Seller(e.User("seller@example.com", "Seller"), models.SellerStatusApproved)
	used, empty := e.Category("Keyboard"), e.Category("Mouse")
	e.Product("Board", "10.00", 1, used, e.Brand("Acme"), seller)

	if _, err := svc.ListPublic(e.ctx); err != nil {
		t.Fatal(err)
	}
	if !e.cache.Has(cache.KeyCategories) {
		t.Fatal("ListPublic should fill the cache")
	}

	err := svc.Delete(e.ctx, used.ID)
	if !errors.Is(err, errs.ErrConflict) {
		t.Fatalf("deleting a category in use: got %v", err)
	}

	if err := svc.Delete(e.ctx, empty.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if e.cache.Has(cache.KeyCategories) {
		t.Error("Delete must invalidate the category cache")
	}
	if _, err := svc.Get(e.ctx, empty.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("deleted category still visible: %v", err)
	}

	items, err := svc.ListPublic(e.ctx)
	if err != nil || len(items) != 1 || items[0].ID != used.ID {
		t.Errorf("ListPublic = %+v, %v", items, err)
	}
}

func TestBrandLifecycle(t *testing.T) {
	e := newTestEnv(t)
	svc := NewBrandService(e.brands, e.cache)
	seller := e.Seller(e.User("seller@example.com", "Seller"), models.SellerStatusApproved)

	acme, err := svc.Create(e.ctx, other.BrandRequest{Name: "Acme", Description: "tools"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(e.ctx, other.BrandRequest{Name: "acme"}); !errors.Is(err, errs.ErrConflict) {
		t.Errorf("duplicate brand: got %v", err)
	}

	updated, err := svc.Update(e.ctx, acme.ID, other.BrandRequest{Name: "Acme Corp"})
	if err != nil || updated.Name != "Acme Corp" {
		t.Fatalf("Update = %+v, %v", updated, err)
	}

	e.Product("Board", "10.00", 1, e.Category("Keyboard"), acme, seller)
	if err := svc.Delete(e.ctx, acme.ID); !errors.Is(err, errs.ErrConflict) {
		t.Errorf("deleting a brand in use: got %v", err)
	}
	if _, err := svc.Update(e.ctx, 999, other.BrandRequest{Name: "Nope"}); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("unknown brand: got %v", err)
	}
}
