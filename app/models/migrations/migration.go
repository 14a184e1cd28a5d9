package migrations

import (
	"github.com/Rakhulsr/go-marketplace/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.SellerProfile{},
		&models.Category{},
		&models.Brand{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
}
