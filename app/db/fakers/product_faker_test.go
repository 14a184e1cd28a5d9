package fakers

import (
	"testing"

	"github.com/Rakhulsr/go-marketplace/app/models"
)

func TestProductFaker(t *testing.T) {
	cat := &models.Category{ID: 3, Name: "Keyboard", IsTechnical: true}
	brand := BrandFaker()
	brand.ID = 4
	seller := &models.SellerProfile{ID: 5}

	for i := 0; i < 20; i++ {
		p := ProductFaker(cat, brand, seller)
		if p.CategoryID != 3 || p.BrandID != 4 || p.SellerProfileID != 5 {
			t.Fatalf("ids not wired: %+v", p)
		}
		if !p.Price.IsPositive() || p.Price.Exponent() < -2 {
			t.Errorf("price %s", p.Price)
		}
		if p.Stock < 1 || !p.IsPublished || p.ErgonomyLevel == "" {
			t.Errorf("product %+v", p)
		}
	}

	plain := ProductFaker(&models.Category{ID: 1}, brand, seller)
	if plain.ErgonomyLevel != "" || plain.ConnectivityType != "" {
		t.Errorf("non technical category got hardware attributes: %+v", plain)
	}
}
