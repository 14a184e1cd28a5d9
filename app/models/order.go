package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusPaid      = "Paid"
	OrderStatusShipped   = "Shipped"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

type Order struct {
	ID           uint            `gorm:"primaryKey;autoIncrement"`
	OrderCode    string          `gorm:"size:40;not null;uniqueIndex"`
	UserID       string          `gorm:"size:36;not null;index"`
	User         *User           `gorm:"foreignKey:UserID"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Status       string          `gorm:"size:20;not null;default:'Pending'"`
	OrderItems   []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	PaymentToken string          `gorm:"size:255"`
	PaymentURL   string          `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.OrderCode == "" {
		o.OrderCode = fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), strings.ToUpper(uuid.New().String()[:8]))
	}
	return
}
