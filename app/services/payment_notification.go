package services

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/Rakhulsr/go-marketplace/app/errs"
	"github.com/Rakhulsr/go-marketplace/app/models"
	"gorm.io/gorm"
)

// PaymentNotification is the body Midtrans posts to the notification URL.
type PaymentNotification struct {
	TransactionStatus string `json:"transaction_status"`
	OrderID           string `json:"order_id"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	StatusCode        string `json:"status_code"`
	Currency          string `json:"currency"`
	TransactionID     string `json:"transaction_id"`
	TransactionTime   string `json:"transaction_time"`
}

// Signature is SHA512(order_id + status_code + gross_amount + server key), hex encoded.
func (n PaymentNotification) Signature(serverKey string) string {
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// HandleNotification applies a Midtrans status update to a Pending order.
// Settled payments mark the order Paid. Denied, expired and cancelled payments
// cancel it and put the reserved stock back. Orders that already left Pending
// are not touched again.
func (s *OrderService) HandleNotification(ctx context.Context, n PaymentNotification) (*models.Order, error) {
	if s.gateway.ServerKey == "" {
		return nil, fmt.Errorf("%w: payments are not configured", errs.ErrUnavailable)
	}
	expected := n.Signature(s.gateway.ServerKey)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(n.SignatureKey)) != 1 {
		return nil, errs.Forbidden("invalid signature for order %s", n.OrderID)
	}

	status, fraud := n.TransactionStatus, n.FraudStatus
	if s.gateway.Status != nil {
		checked, midtransErr := s.gateway.Status.CheckTransaction(n.OrderID)
		if midtransErr != nil {
			log.Printf("HandleNotification: CheckTransaction failed for %s: %v", n.OrderID, midtransErr)
			return nil, fmt.Errorf("%w: could not verify transaction %s", errs.ErrUnavailable, n.OrderID)
		}
		if checked != nil && checked.TransactionStatus != "" {
			if checked.TransactionStatus != status || checked.FraudStatus != fraud {
				log.Printf("HandleNotification: status mismatch for %s, notification %s/%s, api %s/%s", n.OrderID, status, fraud, checked.TransactionStatus, checked.FraudStatus)
			}
			status, fraud = checked.TransactionStatus, checked.FraudStatus
		}
	}

	order, err := s.orderRepo.FindByCode(ctx, n.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order %s: %w", n.OrderID, err)
	}
	if order == nil {
		return nil, errs.NotFound("order %s", n.OrderID)
	}
	if order.Status != models.OrderStatusPending {
		log.Printf("HandleNotification: order %s already %s, ignoring %s", order.OrderCode, order.Status, status)
		return order, nil
	}

	var target string
	switch status {
	case "capture", "settlement":
		if fraud == "" || fraud == "accept" {
			target = models.OrderStatusPaid
		} else {
			target = models.OrderStatusCancelled
		}
	case "deny", "expire", "cancel", "failure":
		target = models.OrderStatusCancelled
	case "pending":
		return order, nil
	default:
		return nil, errs.Validation("unhandled transaction status %q", status)
	}

	var moved bool
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		moved, err = s.orderRepo.TransitionStatus(ctx, tx, order.ID, models.OrderStatusPending, target)
		if err != nil {
			return fmt.Errorf("failed to update order %d: %w", order.ID, err)
		}
		if !moved || target != models.OrderStatusCancelled {
			return nil
		}
		for _, it := range order.OrderItems {
			if err := s.productRepo.IncrementStock(ctx, tx, it.ProductID, it.Quantity); err != nil {
				return fmt.Errorf("failed to restock product %d: %w", it.ProductID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !moved {
		// another notification settled the order first
		current, err := s.orderRepo.FindByCode(ctx, n.OrderID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload order %s: %w", n.OrderID, err)
		}
		if current == nil {
			return nil, errs.NotFound("order %s", n.OrderID)
		}
		log.Printf("HandleNotification: order %s moved to %s concurrently, ignoring %s", current.OrderCode, current.Status, status)
		return current, nil
	}

	order.Status = target
	return order, nil
}
