package fakers

import (
	"math"
	"math/rand"
	"strings"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

var (
	connectivity = []string{"USB-C", "Bluetooth 5.1", "2.4GHz Wireless", "USB-A"}
	supportedOS  = []string{"Windows, macOS, Linux", "Windows", "macOS", "Android, iOS"}
	ergonomy     = []models.ErgonomyLevel{models.ErgonomyLow, models.ErgonomyMedium, models.ErgonomyHigh}
)

func BrandFaker() *models.Brand {
	return &models.Brand{
		Name:        strings.Title(faker.Word()) + " " + uuid.NewString()[:4],
		Description: faker.Sentence(),
	}
}

// ProductFaker builds an unsaved, published product for the given seller.
// Technical categories get the hardware attributes filled in.
func ProductFaker(category *models.Category, brand *models.Brand, seller *models.SellerProfile) *models.Product {
	name := brand.Name + " " + strings.Title(faker.Word())

	product := &models.Product{
		Name:            name,
		Slug:            slug.Make(name + "-" + uuid.NewString()[:6]),
		Description:     faker.Paragraph(),
		Price:           decimal.NewFromFloat(fakePrice()).Round(2),
		Stock:           rand.Intn(20) + 1,
		ImageURL:        "/uploads/placeholder.jpg",
		CategoryID:      category.ID,
		BrandID:         brand.ID,
		SellerProfileID: seller.ID,
		WarrantyMonths:  12 * (rand.Intn(3) + 1),
		IsPublished:     true,
	}
	if category.IsTechnical {
		product.ErgonomyLevel = ergonomy[rand.Intn(len(ergonomy))]
		product.ConnectivityType = connectivity[rand.Intn(len(connectivity))]
		product.SupportedOS = supportedOS[rand.Intn(len(supportedOS))]
	}
	return product
}

// UserFaker builds an unsaved user. The password must already be hashed.
func UserFaker(hashedPassword string) *models.User {
	return &models.User{
		FullName: faker.Name(),
		Email:    strings.ToLower(uuid.NewString()[:8] + "." + faker.Email()),
		Password: hashedPassword,
	}
}

func fakePrice() float64 {
	return precision(5+rand.Float64()*math.Pow10(rand.Intn(3)+1), 2)
}

func precision(val float64, pre int) float64 {
	a := math.Pow10(pre)
	return float64(int(val*a)) / a

}
