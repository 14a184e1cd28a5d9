package services

import (
	"context"
	"testing"

	"github.com/Rakhulsr/go-marketplace/app/cache"
	"github.com/Rakhulsr/go-marketplace/app/db/dbtest"
	"github.com/Rakhulsr/go-marketplace/app/messaging"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
)

type testEnv struct {
	*dbtest.Fixture
	ctx       context.Context
	events    *messaging.Recorder
	cache     *cache.MemoryCatalogCache
	users     repositories.UserRepositoryImpl
	sellers   repositories.SellerProfileRepositoryImpl
	products  repositories.ProductRepositoryImpl
	cartItems repositories.CartItemRepositoryImpl
	orders    repositories.OrderRepository
	category  repositories.CategoryRepositoryImpl
	brands    repositories.BrandRepositoryImpl
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	f := dbtest.NewFixture(t)
	return &testEnv{
		Fixture:   f,
		ctx:       context.Background(),
		events:    &messaging.Recorder{},
		cache:     cache.NewMemoryCatalogCache(),
		users:     repositories.NewUserRepository(f.DB),
		sellers:   repositories.NewSellerProfileRepository(f.DB),
		products:  repositories.NewProductRepository(f.DB),
		cartItems: repositories.NewCartItemRepository(f.DB),
		orders:    repositories.NewOrderRepository(f.DB),
		category:  repositories.NewCategoryRepository(f.DB),
		brands:    repositories.NewBrandRepository(f.DB),
	}
}

func (e *testEnv) checkout() *CheckoutService {
	return NewCheckoutService(e.DB, e.cartItems, e.products, e.orders, e.events)
}
