// Package dbtest opens throwaway SQLite databases migrated with the
// production schema.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/migrations"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("dbtest.Open: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("dbtest.Open: %v", err)
	}
	// one connection keeps the in-memory database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := migrations.AutoMigrate(db); err != nil {
		t.Fatalf("dbtest.Open: migrate: %v", err)
	}
	return db
}

type Fixture struct {
	DB *gorm.DB
	t  testing.TB
}

func NewFixture(t testing.TB) *Fixture {
	return &Fixture{DB: Open(t), t: t}
}

func (f *Fixture) must(err error) {
	f.t.Helper()
	if err != nil {
		f.t.Fatalf("fixture: %v", err)
	}
}

func (f *Fixture) User(email string, roles ...string) *models.User {
	f.t.Helper()
	u := &models.User{FullName: "Test " + email, Email: email, Password: "x"}
	f.must(f.DB.Create(u).Error)
	for _, r := range roles {
		f.must(f.DB.Create(&models.UserRole{UserID: u.ID, Role: r}).Error)
	}
	return u
}

func (f *Fixture) Seller(user *models.User, status models.SellerStatus) *models.SellerProfile {
	f.t.Helper()
	p := &models.SellerProfile{UserID: user.ID, ShopName: "Shop of " + user.Email, Description: "desc", Status: status}
	f.must(f.DB.Create(p).Error)
	return p
}

func (f *Fixture) Category(name string) *models.Category {
	f.t.Helper()
	c := &models.Category{Name: name, Slug: name}
	f.must(f.DB.Create(c).Error)
	return c
}

func (f *Fixture) Brand(name string) *models.Brand {
	f.t.Helper()
	b := &models.Brand{Name: name}
	f.must(f.DB.Create(b).Error)
	return b
}

func (f *Fixture) Product(name string, price string, stock int, cat *models.Category, brand *models.Brand, seller *models.SellerProfile) *models.Product {
	f.t.Helper()
	p := &models.Product{
		Name:            name,
		Slug:            name,
		Price:           decimal.RequireFromString(price),
		Stock:           stock,
		CategoryID:      cat.ID,
		BrandID:         brand.ID,
		SellerProfileID: seller.ID,
		IsPublished:     true,
	}
	f.must(f.DB.Omit("Category", "Brand", "SellerProfile").Create(p).Error)
	return p
}

func (f *Fixture) CartLine(user *models.User, product *models.Product, qty int, unitPrice string) *models.CartItem {
	f.t.Helper()
	ci := &models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: qty, UnitPrice: decimal.RequireFromString(unitPrice)}
	f.must(f.DB.Omit("Product").Create(ci).Error)
	return ci
}

func (f *Fixture) Reload(dest any, id any) {
	f.t.Helper()
	f.must(f.DB.First(dest, id).Error)
}

func (f *Fixture) Count(model any, where string, args ...any) int64 {
	f.t.Helper()
	var n int64
	q := f.DB.Model(model)
	if where != "" {
		q = q.Where(where, args...)
	}
	f.must(q.Count(&n).Error)
	return n
}
