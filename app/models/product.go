package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErgonomyLevel string

const (
	ErgonomyLow    ErgonomyLevel = "Low"
	ErgonomyMedium ErgonomyLevel = "Medium"
	ErgonomyHigh   ErgonomyLevel = "High"
)

type Product struct {
	ID               uint            `gorm:"primaryKey;autoIncrement"`
	Name             string          `gorm:"size:255;not null"`
	Slug             string          `gorm:"size:255;not null;index"`
	Description      string          `gorm:"type:text"`
	Price            decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Stock            int             `gorm:"not null"`
	ImageURL         string          `gorm:"size:500"`
	CategoryID       uint            `gorm:"not null;index"`
	Category         *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	BrandID          uint            `gorm:"not null;index"`
	Brand            *Brand          `gorm:"foreignKey:BrandID;constraint:OnDelete:RESTRICT"`
	SellerProfileID  uint            `gorm:"not null;index"`
	SellerProfile    *SellerProfile  `gorm:"foreignKey:SellerProfileID;constraint:OnDelete:CASCADE"`
	ErgonomyLevel    ErgonomyLevel   `gorm:"size:10"`
	ConnectivityType string          `gorm:"size:100"`
	SupportedOS      string          `gorm:"size:100"`
	WarrantyMonths   int             `gorm:"not null;default:0"`
	IsPublished      bool            `gorm:"not null;index"`
	IsDeleted        bool            `gorm:"not null;default:false;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Purchasable reports whether the product can be put in a cart or ordered.
func (p *Product) Purchasable() bool {
	return p != nil && p.IsPublished && !p.IsDeleted
}
