package seeders

import (
	"errors"
	"fmt"
	"log"

	"github.com/Rakhulsr/go-marketplace/app/auth"
	"github.com/Rakhulsr/go-marketplace/app/db/fakers"
	"github.com/Rakhulsr/go-marketplace/app/helpers"
	"github.com/Rakhulsr/go-marketplace/app/models"
	"gorm.io/gorm"
)

type Options struct {
	AdminEmail    string
	AdminPassword string
	// Demo adds a seller, brands and products generated with faker.
	Demo         bool
	DemoProducts int
}

var defaultCategories = []models.Category{
	{Name: "Keyboard", Slug: "keyboard", IsTechnical: true, DisplayOrder: 1},
	{Name: "Mouse", Slug: "mouse", IsTechnical: true, DisplayOrder: 2},
}

// DBSeed is safe to run repeatedly: existing rows are left alone.
func DBSeed(db *gorm.DB, opts Options) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedAdmin(tx, opts.AdminEmail, opts.AdminPassword); err != nil {
			return err
		}
		categories, err := seedCategories(tx)
		if err != nil {
			return err
		}
		if opts.Demo {
			return seedDemo(tx, categories, opts.DemoProducts)
		}
		return nil
	})
}

func seedAdmin(tx *gorm.DB, email, password string) error {
	if email == "" {
		return errors.New("admin email is empty")
	}

	var admin models.User
	err := tx.Where("email = ?", email).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if !helpers.PasswordMeetsPolicy(password) {
			return errors.New("ADMIN_PASSWORD must be at least 12 characters with upper and lower case letters, a digit and a symbol")
		}
		hashed, err := helpers.HashPassword(password)
		if err != nil {
			return err
		}
		admin = models.User{FullName: "Administrator", Email: email, Password: hashed}
		if err := tx.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}
		log.Printf("✅ Admin %s created", email)
	case err != nil:
		return err
	default:
		log.Printf("Admin %s already exists", email)
	}

	role := models.UserRole{UserID: admin.ID, Role: string(auth.RoleAdmin)}
	return tx.Where(role).FirstOrCreate(&role).Error
}

func seedCategories(tx *gorm.DB) ([]models.Category, error) {
	out := make([]models.Category, 0, len(defaultCategories))
	for _, c := range defaultCategories {
		category := c
		if err := tx.Where("LOWER(name) = LOWER(?) AND is_deleted = ?", c.Name, false).FirstOrCreate(&category).Error; err != nil {
			return nil, fmt.Errorf("failed to seed category %s: %w", c.Name, err)
		}
		out = append(out, category)
	}
	return out, nil
}

func seedDemo(tx *gorm.DB, categories []models.Category, products int) error {
	if products <= 0 {
		products = 12
	}

	hashed, err := helpers.HashPassword("Demo!Seller2024")
	if err != nil {
		return err
	}
	user := fakers.UserFaker(hashed)
	if err := tx.Create(user).Error; err != nil {
		return err
	}
	for _, r := range []auth.Role{auth.RoleBuyer, auth.RoleSeller} {
		if err := tx.Create(&models.UserRole{UserID: user.ID, Role: string(r)}).Error; err != nil {
			return err
		}
	}

	seller := &models.SellerProfile{
		UserID:      user.ID,
		ShopName:    user.FullName + "'s Shop",
		Description: "Demo shop",
		Status:      models.SellerStatusApproved,
		IsVerified:  true,
	}
	if err := tx.Omit("User").Create(seller).Error; err != nil {
		return err
	}

	brands := make([]*models.Brand, 3)
	for i := range brands {
		brands[i] = fakers.BrandFaker()
		if err := tx.Create(brands[i]).Error; err != nil {
			return err
		}
	}

	for i := 0; i < products; i++ {
		category := categories[i%len(categories)]
		p := fakers.ProductFaker(&category, brands[i%len(brands)], seller)
		if err := tx.Omit("Category", "Brand", "SellerProfile").Create(p).Error; err != nil {
			return err
		}
	}
	log.Printf("✅ Demo seller %s with %d products created", user.Email, products)
	return nil
}
