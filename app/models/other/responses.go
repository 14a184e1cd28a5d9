package other

import (
	"time"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/shopspring/decimal"
)

type NamedItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	Roles     []string  `json:"roles"`
}

type SellerProfileSummary struct {
	ID          uint                `json:"id"`
	ShopName    string              `json:"shopName"`
	Description string              `json:"description"`
	Status      models.SellerStatus `json:"status"`
}

type ProfileResponse struct {
	FullName      string                `json:"fullName"`
	Email         string                `json:"email"`
	Roles         []string              `json:"roles"`
	SellerProfile *SellerProfileSummary `json:"sellerProfile"`
}

type PendingSellerResponse struct {
	ID          uint      `json:"id"`
	ShopName    string    `json:"shopName"`
	Description string    `json:"description"`
	UserEmail   string    `json:"userEmail"`
	AppliedAt   time.Time `json:"appliedAt"`
}

type CategoryAdminResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	IsTechnical  bool   `json:"isTechnical"`
	DisplayOrder int    `json:"displayOrder"`
	ProductCount int64  `json:"productCount"`
}

type BrandResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ProductResponse struct {
	ID               uint                 `json:"id"`
	Name             string               `json:"name"`
	Slug             string               `json:"slug"`
	Stock            int                  `json:"stock"`
	Price            decimal.Decimal      `json:"price"`
	PriceFormatted   string               `json:"priceFormatted"`
	ImageURL         string               `json:"imageUrl"`
	Description      string               `json:"description"`
	CategoryID       uint                 `json:"categoryId"`
	CategoryName     string               `json:"categoryName"`
	BrandID          uint                 `json:"brandId"`
	BrandName        string               `json:"brandName"`
	SellerID         uint                 `json:"sellerId"`
	SellerShopName   string               `json:"sellerShopName"`
	ErgonomyLevel    models.ErgonomyLevel `json:"ergonomyLevel,omitempty"`
	ConnectivityType string               `json:"connectivityType,omitempty"`
	SupportedOS      string               `json:"supportedOS,omitempty"`
	WarrantyMonths   int                  `json:"warrantyMonths"`
	IsPublished      bool                 `json:"isPublished"`
}

type ProductPage struct {
	Items      []ProductResponse `json:"items"`
	PageNumber int               `json:"pageNumber"`
	PageSize   int               `json:"pageSize"`
	Total      int64             `json:"total"`
}

type CartLineResponse struct {
	ProductID    uint            `json:"productId"`
	ProductName  string          `json:"productName"`
	ImageURL     string          `json:"imageUrl"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	LineTotal    decimal.Decimal `json:"lineTotal"`
	Available    bool            `json:"available"`
}

type CartResponse struct {
	Items          []CartLineResponse `json:"items"`
	ItemCount      int                `json:"itemCount"`
	Total          decimal.Decimal    `json:"total"`
	TotalFormatted string             `json:"totalFormatted"`
}

type OrderItemResponse struct {
	ProductID   uint            `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

type OrderResponse struct {
	ID             uint                `json:"id"`
	OrderCode      string              `json:"orderCode"`
	CreatedAt      time.Time           `json:"createdAt"`
	TotalPrice     decimal.Decimal     `json:"totalPrice"`
	TotalFormatted string              `json:"totalFormatted"`
	Status         string              `json:"status"`
	PaymentURL     string              `json:"paymentUrl,omitempty"`
	Items          []OrderItemResponse `json:"items"`
}

type PaymentResponse struct {
	OrderID     uint   `json:"orderId"`
	OrderCode   string `json:"orderCode"`
	Token       string `json:"token"`
	RedirectURL string `json:"redirectUrl"`
}
