package models

import (
	"github.com/shopspring/decimal"
)

// OrderItem keeps the name and unit price the buyer agreed to, independent of later catalog edits.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	OrderID     uint            `gorm:"not null;index"`
	ProductID   uint            `gorm:"not null;index"`
	ProductName string          `gorm:"size:255;not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(16,2);not null"`
}

func (oi OrderItem) LineTotal() decimal.Decimal {
	return oi.UnitPrice.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
