package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	UserID    string          `gorm:"size:36;not null;uniqueIndex:idx_cart_user_product"`
	ProductID uint            `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	Product   *Product        `gorm:"foreignKey:ProductID"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ci CartItem) LineTotal() decimal.Decimal {
	return ci.UnitPrice.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
