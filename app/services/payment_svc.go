package services

import (
	"context"
	"fmt"
	"log"

	"github.com/Rakhulsr/go-marketplace/app/errs"
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/other"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SnapClient is the part of the Midtrans Snap client used to open payment pages.
type SnapClient interface {
	CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
}

// StatusChecker asks Midtrans for the authoritative state of a transaction.
type StatusChecker interface {
	CheckTransaction(orderID string) (*coreapi.TransactionStatusResponse, *midtrans.Error)
}

// PaymentGateway groups the Midtrans clients. A nil Snap disables payments.
type PaymentGateway struct {
	Snap      SnapClient
	Status    StatusChecker
	ServerKey string
	FinishURL string
}

type OrderService struct {
	db          *gorm.DB
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepositoryImpl
	userRepo    repositories.UserRepositoryImpl
	gateway     PaymentGateway
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepositoryImpl,
	userRepo repositories.UserRepositoryImpl,
	gateway PaymentGateway,
) *OrderService {
	return &OrderService{
		db:          db,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		gateway:     gateway,
	}
}

func (s *OrderService) ListMine(ctx context.Context, userID string) ([]models.Order, error) {
	if userID == "" {
		return nil, errs.ErrNotAuthenticated
	}
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, userID string, id uint) (*models.Order, error) {
	if userID == "" {
		return nil, errs.ErrNotAuthenticated
	}
	order, err := s.orderRepo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order %d: %w", id, err)
	}
	if order == nil {
		return nil, errs.NotFound("order %d", id)
	}
	return order, nil
}

// Pay opens a Snap payment page for a pending order. Calling it again returns
// the page created the first time.
func (s *OrderService) Pay(ctx context.Context, userID string, id uint) (*other.PaymentResponse, error) {
	if s.gateway.Snap == nil {
		return nil, fmt.Errorf("%w: payments are not configured", errs.ErrUnavailable)
	}

	order, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		return nil, errs.Conflict("order %d is %s and cannot be paid", order.ID, order.Status)
	}
	if order.PaymentURL != "" {
		return &other.PaymentResponse{OrderID: order.ID, OrderCode: order.OrderCode, Token: order.PaymentToken, RedirectURL: order.PaymentURL}, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	if user == nil {
		return nil, errs.ErrNotAuthenticated
	}

	snapResp, midtransErr := s.gateway.Snap.CreateTransaction(s.snapRequest(order, user))
	if midtransErr != nil {
		log.Printf("OrderService.Pay: Midtrans CreateTransaction error for %s: %v", order.OrderCode, midtransErr)
		return nil, fmt.Errorf("%w: payment provider rejected the request", errs.ErrUnavailable)
	}
	if snapResp == nil || snapResp.Token == "" || snapResp.RedirectURL == "" {
		log.Printf("OrderService.Pay: Midtrans returned an incomplete response for %s: %+v", order.OrderCode, snapResp)
		return nil, fmt.Errorf("%w: payment provider returned no payment page", errs.ErrUnavailable)
	}

	if err := s.orderRepo.UpdatePaymentDetails(ctx, order.ID, snapResp.Token, snapResp.RedirectURL); err != nil {
		return nil, fmt.Errorf("failed to store payment details: %w", err)
	}

	return &other.PaymentResponse{
		OrderID:     order.ID,
		OrderCode:   order.OrderCode,
		Token:       snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

// Midtrans rejects item names longer than this.
const maxItemNameLength = 50

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// snapRequest rounds every amount to whole units and adds an adjustment line
// when the rounded lines do not add up to the rounded total.
func (s *OrderService) snapRequest(order *models.Order, user *models.User) *snap.Request {
	var itemDetails []midtrans.ItemDetails
	itemsTotal := decimal.Zero
	for _, item := range order.OrderItems {
		name := truncateRunes(item.ProductName, maxItemNameLength)
		price := item.UnitPrice.Round(0).IntPart()
		itemDetails = append(itemDetails, midtrans.ItemDetails{
			ID:    fmt.Sprintf("%d", item.ProductID),
			Name:  name,
			Price: price,
			Qty:   int32(item.Quantity),
		})
		itemsTotal = itemsTotal.Add(decimal.NewFromInt(price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	gross := order.TotalPrice.Round(0)
	if diff := gross.Sub(itemsTotal); !diff.IsZero() {
		itemDetails = append(itemDetails, midtrans.ItemDetails{
			ID:    "ADJUSTMENT",
			Name:  "Rounding adjustment",
			Price: diff.IntPart(),
			Qty:   1,
		})
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.OrderCode,
			GrossAmt: gross.IntPart(),
		},
		Items: &itemDetails,
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.FullName,
			Email: user.Email,
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}
	if s.gateway.FinishURL != "" {
		req.Callbacks = &snap.Callbacks{Finish: s.gateway.FinishURL}
	}
	return req
}
