package services

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-marketplace/app/errs"
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"github.com/shopspring/decimal"
)

type CartService struct {
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewCartService(cartItemRepo repositories.CartItemRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *CartService {
	return &CartService{
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

type CartView struct {
	Items []models.CartItem
	Total decimal.Decimal
}

// AddItem adds qty units of a product. An existing line grows and takes the
// current product price.
func (s *CartService) AddItem(ctx context.Context, userID string, productID uint, qty int) (*models.CartItem, error) {
	if userID == "" {
		return nil, errs.ErrNotAuthenticated
	}
	if qty < 1 {
		return nil, errs.Validation("quantity must be at least 1")
	}

	product, err := s.productRepo.FindActiveByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %d: %w", productID, err)
	}
	if !product.Purchasable() {
		return nil, errs.NotFound("product %d", productID)
	}
	if qty > product.Stock {
		return nil, &errs.InsufficientStockError{ProductID: product.ID, ProductName: product.Name, Requested: qty, Available: product.Stock}
	}

	existingItem, err := s.cartItemRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing cart item: %w", err)
	}

	if existingItem != nil {
		newQty := existingItem.Quantity + qty
		if newQty > product.Stock {
			return nil, &errs.InsufficientStockError{ProductID: product.ID, ProductName: product.Name, Requested: newQty, Available: product.Stock}
		}
		existingItem.Quantity = newQty
		existingItem.UnitPrice = product.Price
		if err := s.cartItemRepo.Update(ctx, existingItem); err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
		return existingItem, nil
	}

	cartItem := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
		UnitPrice: product.Price,
	}
	if err := s.cartItemRepo.Add(ctx, cartItem); err != nil {
		if again, _ := s.cartItemRepo.GetByUserAndProduct(ctx, userID, productID); again != nil {
			return nil, errs.Conflict("product %d was added to the cart concurrently, please retry", productID)
		}
		return nil, fmt.Errorf("failed to add new cart item: %w", err)
	}
	return cartItem, nil
}

// RemoveItem deletes the line when qty is nil, not positive, or covers the
// whole line. Otherwise the line shrinks by qty and the remaining line is returned.
func (s *CartService) RemoveItem(ctx context.Context, userID string, productID uint, qty *int) (*models.CartItem, error) {
	if userID == "" {
		return nil, errs.ErrNotAuthenticated
	}

	item, err := s.cartItemRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	if item == nil {
		return nil, errs.NotFound("product %d is not in the cart", productID)
	}

	if qty == nil || *qty <= 0 || *qty >= item.Quantity {
		if err := s.cartItemRepo.Delete(ctx, item.ID); err != nil {
			return nil, fmt.Errorf("failed to remove item from cart: %w", err)
		}
		return nil, nil
	}

	item.Quantity -= *qty
	if err := s.cartItemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update cart item quantity: %w", err)
	}
	return item, nil
}

// GetCart totals the lines at the prices stored when they were added.
func (s *CartService) GetCart(ctx context.Context, userID string) (*CartView, error) {
	if userID == "" {
		return nil, errs.ErrNotAuthenticated
	}

	items, err := s.cartItemRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return &CartView{Items: items, Total: total}, nil
}
