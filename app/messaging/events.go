package messaging

import "time"

type OrderPlacedLine struct {
	ProductID uint   `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

type OrderPlaced struct {
	OrderID    uint              `json:"orderId"`
	OrderCode  string            `json:"orderCode"`
	UserID     string            `json:"userId"`
	TotalPrice string            `json:"totalPrice"`
	Lines      []OrderPlacedLine `json:"lines"`
	PlacedAt   time.Time         `json:"placedAt"`
}

type SellerApproved struct {
	SellerProfileID uint      `json:"sellerProfileId"`
	UserID          string    `json:"userId"`
	ShopName        string    `json:"shopName"`
	ApprovedAt      time.Time `json:"approvedAt"`
}
