package other

import (
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/utils/format"
)

func NewProductResponse(p models.Product, money format.Money) ProductResponse {
	resp := ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		Stock:            p.Stock,
		Price:            p.Price,
		PriceFormatted:   money.Format(p.Price),
		ImageURL:         p.ImageURL,
		Description:      p.Description,
		CategoryID:       p.CategoryID,
		BrandID:          p.BrandID,
		SellerID:         p.SellerProfileID,
		ErgonomyLevel:    p.ErgonomyLevel,
		ConnectivityType: p.ConnectivityType,
		SupportedOS:      p.SupportedOS,
		WarrantyMonths:   p.WarrantyMonths,
		IsPublished:      p.IsPublished,
	}
	if p.Category != nil {
		resp.CategoryName = p.Category.Name
	}
	if p.Brand != nil {
		resp.BrandName = p.Brand.Name
	}
	if p.SellerProfile != nil {
		resp.SellerShopName = p.SellerProfile.ShopName
	}
	return resp
}

func NewProductResponses(products []models.Product, money format.Money) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p, money))
	}
	return out
}

func NewOrderResponse(o models.Order, money format.Money) OrderResponse {
	resp := OrderResponse{
		ID:             o.ID,
		OrderCode:      o.OrderCode,
		CreatedAt:      o.CreatedAt,
		TotalPrice:     o.TotalPrice,
		TotalFormatted: money.Format(o.TotalPrice),
		Status:         o.Status,
		PaymentURL:     o.PaymentURL,
		Items:          make([]OrderItemResponse, 0, len(o.OrderItems)),
	}
	for _, it := range o.OrderItems {
		resp.Items = append(resp.Items, OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal(),
		})
	}
	return resp
}

func NewSellerProfileSummary(p *models.SellerProfile) *SellerProfileSummary {
	if p == nil {
		return nil
	}
	return &SellerProfileSummary{
		ID:          p.ID,
		ShopName:    p.ShopName,
		Description: p.Description,
		Status:      p.Status,
	}
}
