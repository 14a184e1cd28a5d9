package other

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rakhulsr/go-marketplace/app/errs"
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required,notblank,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,password_policy"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type BecomeSellerRequest struct {
	ShopName    string `json:"shopName" validate:"required,notblank,max=150"`
	Description string `json:"description" validate:"required,notblank,max=2000"`
}

type CategoryRequest struct {
	Name         string `json:"name" validate:"required,notblank,max=100"`
	IsTechnical  bool   `json:"isTechnical"`
	DisplayOrder *int   `json:"displayOrder" validate:"omitempty,gte=0"`
}

type BrandRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=100"`
	Description string `json:"description" validate:"max=2000"`
}

type CartAddForm struct {
	ProductID string `validate:"required,number"`
	Quantity  string `validate:"required,numeric"`
}

type CartRemoveForm struct {
	ProductID string `validate:"required,number"`
	Quantity  string `validate:"omitempty,numeric"`
}

// ProductForm mirrors the multipart fields of the product create and update forms.
type ProductForm struct {
	ProductName      string `validate:"required,notblank,max=255"`
	Stock            string `validate:"required,number"`
	Price            string `validate:"required,numeric"`
	Description      string `validate:"max=4000"`
	CategoryID       string `validate:"required,number"`
	BrandID          string `validate:"required,number"`
	ImageURL         string `validate:"max=500"`
	ErgonomyLevel    string `validate:"omitempty,oneof=Low Medium High"`
	ConnectivityType string `validate:"max=100"`
	SupportedOS      string `validate:"max=100"`
	WarrantyMonths   string `validate:"omitempty,number"`
}

type ProductInput struct {
	Name             string
	Stock            int
	Price            decimal.Decimal
	Description      string
	CategoryID       uint
	BrandID          uint
	ImageURL         string
	ErgonomyLevel    models.ErgonomyLevel
	ConnectivityType string
	SupportedOS      string
	WarrantyMonths   int
}

// ToInput converts an already validated form.
func (f ProductForm) ToInput() (ProductInput, error) {
	in := ProductInput{
		Name:             strings.TrimSpace(f.ProductName),
		Description:      strings.TrimSpace(f.Description),
		ImageURL:         strings.TrimSpace(f.ImageURL),
		ErgonomyLevel:    models.ErgonomyLevel(f.ErgonomyLevel),
		ConnectivityType: strings.TrimSpace(f.ConnectivityType),
		SupportedOS:      strings.TrimSpace(f.SupportedOS),
	}

	var err error
	if in.Stock, err = strconv.Atoi(f.Stock); err != nil || in.Stock < 0 {
		return in, errs.Validation("stock must be a non-negative whole number")
	}
	if in.Price, err = decimal.NewFromString(f.Price); err != nil || in.Price.IsNegative() {
		return in, errs.Validation("price must be a non-negative amount")
	}
	if in.Price.Exponent() < -2 {
		return in, errs.Validation("price supports at most two decimals")
	}
	if in.CategoryID, err = parseID(f.CategoryID); err != nil {
		return in, errs.Validation("categoryId: %v", err)
	}
	if in.BrandID, err = parseID(f.BrandID); err != nil {
		return in, errs.Validation("brandId: %v", err)
	}
	if f.WarrantyMonths != "" {
		if in.WarrantyMonths, err = strconv.Atoi(f.WarrantyMonths); err != nil || in.WarrantyMonths < 0 {
			return in, errs.Validation("warrantyMonths must be a non-negative whole number")
		}
	}
	return in, nil
}

func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%q is not a valid id", s)
	}
	return uint(n), nil
}

// ParseID parses a positive numeric id from a path or form value.
func ParseID(s string) (uint, error) {
	id, err := parseID(s)
	if err != nil {
		return 0, errs.Validation("%v", err)
	}
	return id, nil
}
