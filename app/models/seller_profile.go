package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SellerStatus string

const (
	SellerStatusPending  SellerStatus = "Pending"
	SellerStatusApproved SellerStatus = "Approved"
	SellerStatusRejected SellerStatus = "Rejected"
)

type SellerProfile struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	UserID      string          `gorm:"size:36;not null;uniqueIndex"`
	User        *User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ShopName    string          `gorm:"size:150;not null"`
	Description string          `gorm:"type:text;not null"`
	Status      SellerStatus    `gorm:"size:20;not null;default:'Pending';index"`
	Rating      decimal.Decimal `gorm:"type:decimal(3,2);default:0"`
	TotalSales  int             `gorm:"not null;default:0"`
	IsVerified  bool            `gorm:"not null;default:false"`
	IsDeleted   bool            `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s *SellerProfile) IsApproved() bool {
	return s != nil && !s.IsDeleted && s.Status == SellerStatusApproved
}
