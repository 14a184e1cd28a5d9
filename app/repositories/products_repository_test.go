package repositories

import (
	"context"
	"testing"

	"github.com/Rakhulsr/go-marketplace/app/db/dbtest"
	"github.com/Rakhulsr/go-marketplace/app/models"
)

func seedCatalog(t *testing.T) (*dbtest.Fixture, *models.Category, *models.Brand, *models.SellerProfile) {
	t.Helper()
	f := dbtest.NewFixture(t)
	seller := f.Seller(f.User("seller@example.com", "Seller"), models.SellerStatusApproved)
	return f, f.Category("Keyboard"), f.Brand("Acme"), seller
}

func TestDecrementStockGuard(t *testing.T) {
	f, cat, brand, seller := seedCatalog(t)
	p := f.Product("A", "10.00", 3, cat, brand, seller)
	repo := NewProductRepository(f.DB)
	ctx := context.Background()

	ok, err := repo.DecrementStock(ctx, f.DB, p.ID, 2)
	if err != nil || !ok {
		t.Fatalf("first decrement: %v %v", ok, err)
	}
	ok, err = repo.DecrementStock(ctx, f.DB, p.ID, 2)
	if err != nil || ok {
		t.Fatalf("decrement past zero should be refused: %v %v", ok, err)
	}

	var reloaded models.Product
	f.Reload(&reloaded, p.ID)
	if reloaded.Stock != 1 {
		t.Errorf("stock = %d, want 1", reloaded.Stock)
	}

	if err := repo.IncrementStock(ctx, f.DB, p.ID, 4); err != nil {
		t.Fatal(err)
	}
	f.Reload(&reloaded, p.ID)
	if reloaded.Stock != 5 {
		t.Errorf("stock = %d, want 5", reloaded.Stock)
	}
}

func TestListPublishedFiltersAndSorts(t *testing.T) {
	f, cat, brand, seller := seedCatalog(t)
	other := f.Brand("Other")
	f.Product("B", "30.00", 1, cat, brand, seller)
	f.Product("A", "10.00", 1, cat, brand, seller)
	f.Product("C", "20.00", 1, cat, other, seller)
	hidden := f.Product("D", "5.00", 1, cat, brand, seller)
	repo := NewProductRepository(f.DB)
	ctx := context.Background()

	if err := repo.SoftDelete(ctx, hidden.ID); err != nil {
		t.Fatal(err)
	}

	products, total, err := repo.ListPublished(ctx, ProductFilter{SortBy: SortByPriceAsc, Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(products) != 3 {
		t.Fatalf("total %d, len %d", total, len(products))
	}
	if products[0].Name != "A" || products[2].Name != "B" {
		t.Errorf("price order: %s %s %s", products[0].Name, products[1].Name, products[2].Name)
	}

	products, total, err = repo.ListPublished(ctx, ProductFilter{BrandID: &brand.ID, SortBy: SortByNameDesc, Limit: 1, Offset: 1})
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 || len(products) != 1 || products[0].Name != "A" {
		t.Errorf("brand page: total %d, %+v", total, products)
	}
}

func TestOrderTransitionStatusOnlyFromExpected(t *testing.T) {
	f, cat, brand, seller := seedCatalog(t)
	buyer := f.User("buyer@example.com", "Buyer")
	p := f.Product("A", "10.00", 3, cat, brand, seller)
	repo := NewOrderRepository(f.DB)
	ctx := context.Background()

	order := &models.Order{UserID: buyer.ID, TotalPrice: p.Price, Status: models.OrderStatusPending}
	if err := repo.Create(ctx, f.DB, order); err != nil {
		t.Fatal(err)
	}

	moved, err := repo.TransitionStatus(ctx, nil, order.ID, models.OrderStatusPending, models.OrderStatusPaid)
	if err != nil || !moved {
		t.Fatalf("pending to paid: %v %v", moved, err)
	}
	moved, err = repo.TransitionStatus(ctx, nil, order.ID, models.OrderStatusPending, models.OrderStatusCancelled)
	if err != nil || moved {
		t.Fatalf("second transition should not apply: %v %v", moved, err)
	}

	found, err := repo.FindByCode(ctx, order.OrderCode)
	if err != nil || found == nil || found.Status != models.OrderStatusPaid {
		t.Errorf("FindByCode: %+v %v", found, err)
	}
	if missing, err := repo.FindByCode(ctx, "ORD-nope"); err != nil || missing != nil {
		t.Errorf("unknown code: %+v %v", missing, err)
	}
}
