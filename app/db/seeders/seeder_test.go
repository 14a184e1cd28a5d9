package seeders

import (
	"testing"

	"github.com/Rakhulsr/go-marketplace/app/db/dbtest"
	"github.com/Rakhulsr/go-marketplace/app/models"
)

func TestDBSeedIsRepeatable(t *testing.T) {
	f := dbtest.NewFixture(t)
	opts := Options{AdminEmail: "admin@example.com", AdminPassword: "Adm1n!Password"}

	for i := 0; i < 2; i++ {
		if err := DBSeed(f.DB, opts); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	if n := f.Count(&models.User{}, "email = ?", "admin@example.com"); n != 1 {
		t.Errorf("admins: %d", n)
	}
	if n := f.Count(&models.UserRole{}, "role = ?", "Admin"); n != 1 {
		t.Errorf("admin roles: %d", n)
	}
	if n := f.Count(&models.Category{}, ""); n != 2 {
		t.Errorf("categories: %d", n)
	}
}

func TestDBSeedRejectsWeakAdminPassword(t *testing.T) {
	f := dbtest.NewFixture(t)
	if err := DBSeed(f.DB, Options{AdminEmail: "admin@example.com", AdminPassword: "short"}); err == nil {
		t.Fatal("expected an error")
	}
	if n := f.Count(&models.Category{}, ""); n != 0 {
		t.Errorf("seed was not rolled back: %d categories", n)
	}
}

func TestDBSeedDemo(t *testing.T) {
	f := dbtest.NewFixture(t)
	opts := Options{AdminEmail: "admin@example.com", AdminPassword: "Adm1n!Password", Demo: true, DemoProducts: 5}
	if err := DBSeed(f.DB, opts); err != nil {
		t.Fatal(err)
	}
	if n := f.Count(&models.Product{}, "is_published = ?", true); n != 5 {
		t.Errorf("products: %d", n)
	}
	if n := f.Count(&models.SellerProfile{}, "status = ?", models.SellerStatusApproved); n != 1 {
		t.Errorf("sellers: %d", n)
	}
}
