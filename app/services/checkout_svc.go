package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/Rakhulsr/go-marketplace/app/errs"
	"github.com/Rakhulsr/go-marketplace/app/messaging"
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CheckoutService struct {
	db           *gorm.DB
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	orderRepo    repositories.OrderRepository
	publisher    messaging.Publisher
}

func NewCheckoutService(
	db *gorm.DB,
	cartItemRepo repositories.CartItemRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	orderRepo repositories.OrderRepository,
	publisher messaging.Publisher,
) *CheckoutService {
	return &CheckoutService{
		db:           db,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		publisher:    publisher,
	}
}

// Checkout turns the user's cart into an order in a single transaction.
// Every line is checked for availability, then every line for stock, before
// anything is written. Products are locked for the duration of the
// transaction and each decrement is guarded by the stock column itself.
func (s *CheckoutService) Checkout(ctx context.Context, userID string) (*models.Order, error) {
	if userID == "" {
		return nil, errs.ErrNotAuthenticated
	}

	var order *models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines, err := s.cartItemRepo.ListByUser(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("failed to load cart: %w", err)
		}
		if len(lines) == 0 {
			return errs.ErrEmptyCart
		}

		ids := make([]uint, 0, len(lines))
		for _, line := range lines {
			ids = append(ids, line.ProductID)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		locked, err := s.productRepo.LockByIDs(ctx, tx, ids)
		if err != nil {
			return fmt.Errorf("failed to lock products: %w", err)
		}
		products := make(map[uint]*models.Product, len(locked))
		for i := range locked {
			products[locked[i].ID] = &locked[i]
		}

		for _, line := range lines {
			p := products[line.ProductID]
			if !p.Purchasable() {
				name := ""
				if p != nil {
					name = p.Name
				} else if line.Product != nil {
					name = line.Product.Name
				}
				return &errs.ProductUnpublishedError{ProductID: line.ProductID, ProductName: name}
			}
		}
		for _, line := range lines {
			p := products[line.ProductID]
			if line.Quantity > p.Stock {
				return &errs.InsufficientStockError{ProductID: p.ID, ProductName: p.Name, Requested: line.Quantity, Available: p.Stock}
			}
		}

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			p := products[line.ProductID]
			items = append(items, models.OrderItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitPrice,
			})
			total = total.Add(line.LineTotal())
		}

		order = &models.Order{
			UserID:     userID,
			TotalPrice: total,
			Status:     models.OrderStatusPending,
			OrderItems: items,
		}
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, line := range lines {
			ok, err := s.productRepo.DecrementStock(ctx, tx, line.ProductID, line.Quantity)
			if err != nil {
				return fmt.Errorf("failed to decrement stock of product %d: %w", line.ProductID, err)
			}
			if !ok {
				p := products[line.ProductID]
				return &errs.InsufficientStockError{ProductID: p.ID, ProductName: p.Name, Requested: line.Quantity, Available: p.Stock}
			}
		}

		if err := s.cartItemRepo.ClearByUser(ctx, tx, userID); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		var stockErr *errs.InsufficientStockError
		if !errors.As(err, &stockErr) && !errors.Is(err, errs.ErrValidation) {
			log.Printf("Checkout: user %s: %v", userID, err)
		}
		return nil, err
	}

	s.publishOrderPlaced(ctx, order)
	return order, nil
}

func (s *CheckoutService) publishOrderPlaced(ctx context.Context, order *models.Order) {
	event := messaging.OrderPlaced{
		OrderID:    order.ID,
		OrderCode:  order.OrderCode,
		UserID:     order.UserID,
		TotalPrice: order.TotalPrice.StringFixed(2),
		PlacedAt:   order.CreatedAt,
	}
	for _, it := range order.OrderItems {
		event.Lines = append(event.Lines, messaging.OrderPlacedLine{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
		})
	}
	if err := s.publisher.PublishEvent(ctx, messaging.TopicOrderPlaced, order.OrderCode, event); err != nil {
		log.Printf("Checkout: failed to publish %s for order %d: %v", messaging.TopicOrderPlaced, order.ID, err)
	}
}
