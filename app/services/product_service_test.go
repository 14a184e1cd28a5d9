package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/Rakhulsr/go-marketplace/app/auth"
	"github.com/Rakhulsr/go-marketplace/app/errs"
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/other"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"github.com/Rakhulsr/go-marketplace/app/utils/storage"
	"github.com/shopspring/decimal"
)

func (e *testEnv) productService(t *testing.T) *ProductService {
	return NewProductService(e.products, e.category, e.brands, e.sellers, storage.NewLocalImageStore(t.TempDir()))
}

func identity(user *models.User, roles ...string) auth.Identity {
	return auth.Identity{User: user, Roles: auth.NewRoleSet(roles...)}
}

func TestProductQueryNormalize(t *testing.T) {
	tests := []struct {
		in   ProductQuery
		page int
		size int
		sort string
	}{
		{ProductQuery{}, 1, DefaultPageSize, ""},
		{ProductQuery{PageNumber: -3, PageSize: intPtr(500), SortBy: "priceDesc"}, 1, MaxPageSize, "priceDesc"},
		{ProductQuery{PageNumber: 4, PageSize: intPtr(5), SortBy: "bogus"}, 4, 5, ""},
		{ProductQuery{PageSize: intPtr(0)}, 1, 1, ""},
		{ProductQuery{PageSize: intPtr(-5)}, 1, 1, ""},
		{ProductQuery{PageSize: intPtr(1)}, 1, 1, ""},
	}
	for _, tt := range tests {
		got := tt.in.Normalize()
		if got.PageNumber != tt.page || *got.PageSize != tt.size || got.SortBy != tt.sort {
			t.Errorf("Normalize(%+v) = %+v", tt.in, got)
		}
	}
}

func intPtr(n int) *int { return &n }

func TestProductListFiltersAndSorts(t *testing.T) {
	e := newTestEnv(t)
	seller := e.Seller(e.User("seller@example.com", "Seller"), models.SellerStatusApproved)
	keyboards, mice := e.Category("Keyboard"), e.Category("Mouse")
	acme := e.Brand("Acme")
	e.Product("Beta", "30.00", 1, keyboards, acme, seller)
	e.Product("Alpha", "20.00", 1, keyboards, acme, seller)
	e.Product("Gamma", "10.00", 1, mice, acme, seller)
	hidden := e.Product("Hidden", "1.00", 1, keyboards, acme, seller)
	e.DB.Model(&models.Product{}).Where("id = ?", hidden.ID).Update("is_published", false)
	svc := e.productService(t)

	products, total, _, err := svc.List(e.ctx, ProductQuery{SortBy: "priceAsc"})
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(products) != 3 || products[0].Name != "Gamma" {
		t.Fatalf("priceAsc: total=%d first=%v", total, names(products))
	}

	products, total, _, err = svc.List(e.ctx, ProductQuery{CategoryID: &keyboards.ID, SortBy: "nameAsc"})
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 || names(products) != "Alpha,Beta" {
		t.Errorf("category filter: total=%d got %s", total, names(products))
	}

	products, total, q, err := svc.List(e.ctx, ProductQuery{SortBy: "nameDesc", PageNumber: 2, PageSize: intPtr(2)})
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || names(products) != "Alpha" || q.PageNumber != 2 {
		t.Errorf("second page: total=%d got %s", total, names(products))
	}

	if _, err := svc.Get(e.ctx, hidden.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("unpublished product must not be visible: %v", err)
	}
}

func names(products []models.Product) string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return strings.Join(out, ",")
}

func productForm(cat, brand uint) other.ProductForm {
	return other.ProductForm{
		ProductName:   "Split Keyboard",
		Stock:         "4",
		Price:         "129.90",
		CategoryID:    strconv.FormatUint(uint64(cat), 10),
		BrandID:       strconv.FormatUint(uint64(brand), 10),
		ErgonomyLevel: "High",
	}
}

func TestProductCreateUpdateOwnership(t *testing.T) {
	e := newTestEnv(t)
	owner := e.Seller(e.User("owner@example.com", "Seller"), models.SellerStatusApproved)
	rival := e.Seller(e.User("rival@example.com", "Seller"), models.SellerStatusApproved)
	cat, brand := e.Category("Keyboard"), e.Brand("Acme")
	svc := e.productService(t)

	product, err := svc.Create(e.ctx, owner, productForm(cat.ID, brand.ID), &ImageUpload{Filename: "board.png", Reader: strings.NewReader("png")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !product.IsPublished || product.SellerProfileID != owner.ID || product.Slug != "split-keyboard" {
		t.Errorf("unexpected product %+v", product)
	}
	if !strings.HasPrefix(product.ImageURL, "/uploads/products/") {
		t.Errorf("image url = %q", product.ImageURL)
	}

	form := productForm(cat.ID, brand.ID)
	form.Price = "99.00"
	if _, err := svc.Update(e.ctx, rival, product.ID, form, nil); !errors.Is(err, errs.ErrForbidden) {
		t.Errorf("rival update: got %v", err)
	}
	updated, err := svc.Update(e.ctx, owner, product.ID, form, nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Price.Equal(decimal.RequireFromString("99.00")) || updated.ImageURL != product.ImageURL {
		t.Errorf("unexpected update %+v", updated)
	}

	mine, err := svc.ListMine(e.ctx, owner)
	if err != nil || len(mine) != 1 {
		t.Errorf("ListMine = %d, %v", len(mine), err)
	}

	bad := productForm(cat.ID, 999)
	if _, err := svc.Create(e.ctx, owner, bad, nil); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("unknown brand: got %v", err)
	}
	bad = productForm(cat.ID, brand.ID)
	bad.Price = "1.234"
	if _, err := svc.Create(e.ctx, owner, bad, nil); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("three decimals: got %v", err)
	}
}

// brokenProducts fails every write after the lookups succeed.
type brokenProducts struct {
	repositories.ProductRepositoryImpl
}

func (brokenProducts) Create(context.Context, *models.Product) error {
	return errors.New("database is gone")
}

func (brokenProducts) Update(context.Context, *models.Product) error {
	return errors.New("database is gone")
}

func TestProductWriteFailureRemovesUploadedImage(t *testing.T) {
	e := newTestEnv(t)
	owner := e.Seller(e.User("owner@example.com", "Seller"), models.SellerStatusApproved)
	cat, brand := e.Category("Keyboard"), e.Brand("Acme")
	root := t.TempDir()
	store := storage.NewLocalImageStore(root)

	good := NewProductService(e.products, e.category, e.brands, e.sellers, store)
	product, err := good.Create(e.ctx, owner, productForm(cat.ID, brand.ID), &ImageUpload{Filename: "first.png", Reader: strings.NewReader("png")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	svc := NewProductService(brokenProducts{e.products}, e.category, e.brands, e.sellers, store)
	if _, err := svc.Create(e.ctx, owner, productForm(cat.ID, brand.ID), &ImageUpload{Filename: "orphan.png", Reader: strings.NewReader("png")}); err == nil {
		t.Fatal("expected create to fail")
	}
	if _, err := svc.Update(e.ctx, owner, product.ID, productForm(cat.ID, brand.ID), &ImageUpload{Filename: "orphan.jpg", Reader: strings.NewReader("jpg")}); err == nil {
		t.Fatal("expected update to fail")
	}

	entries, err := os.ReadDir(filepath.Join(root, "products"))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != filepath.Base(product.ImageURL) {
		t.Fatalf("expected only %s on disk, found %d files", product.ImageURL, len(entries))
	}
}

func TestProductDelete(t *testing.T) {
	e := newTestEnv(t)
	ownerUser := e.User("owner@example.com", "Buyer", "Seller")
	rivalUser := e.User("rival@example.com", "Buyer", "Seller")
	admin := e.User("admin@example.com", "Admin")
	buyer := e.User("buyer@example.com", "Buyer")
	owner := e.Seller(ownerUser, models.SellerStatusApproved)
	e.Seller(rivalUser, models.SellerStatusApproved)
	cat, brand := e.Category("Keyboard"), e.Brand("Acme")
	first := e.Product("One", "1.00", 1, cat, brand, owner)
	second := e.Product("Two", "1.00", 1, cat, brand, owner)
	svc := e.productService(t)

	if err := svc.Delete(e.ctx, auth.Anonymous, first.ID); !errors.Is(err, errs.ErrNotAuthenticated) {
		t.Errorf("anonymous: got %v", err)
	}
	if err := svc.Delete(e.ctx, identity(buyer, "Buyer"), first.ID); !errors.Is(err, errs.ErrForbidden) {
		t.Errorf("buyer: got %v", err)
	}
	if err := svc.Delete(e.ctx, identity(rivalUser, "Buyer", "Seller"), first.ID); !errors.Is(err, errs.ErrForbidden) {
		t.Errorf("rival seller: got %v", err)
	}
	if err := svc.Delete(e.ctx, identity(ownerUser, "Buyer", "Seller"), first.ID); err != nil {
		t.Errorf("owner: %v", err)
	}
	if err := svc.Delete(e.ctx, identity(admin, "Admin"), second.ID); err != nil {
		t.Errorf("admin: %v", err)
	}
	if err := svc.Delete(e.ctx, identity(admin, "Admin"), second.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("deleting twice: got %v", err)
	}

	var reloaded models.Product
	e.Reload(&reloaded, first.ID)
	if !reloaded.IsDeleted || reloaded.IsPublished {
		t.Errorf("soft delete left %+v", reloaded)
	}
}
