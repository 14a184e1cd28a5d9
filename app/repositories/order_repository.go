package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *models.Order) error
	FindByIDForUser(ctx context.Context, id uint, userID string) (*models.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Order, error)
	FindByCode(ctx context.Context, code string) (*models.Order, error)
	UpdatePaymentDetails(ctx context.Context, orderID uint, token, paymentURL string) error
	TransitionStatus(ctx context.Context, tx *gorm.DB, id uint, from, to string) (bool, error)
}

type gormOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &gormOrderRepository{db: db}
}

// Create inserts the order together with its items.
func (r *gormOrderRepository) Create(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	return tx.WithContext(ctx).Omit("User").Create(order).Error
}

func (r *gormOrderRepository) FindByIDForUser(ctx context.Context, id uint, userID string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		First(&order, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) UpdatePaymentDetails(ctx context.Context, orderID uint, token, paymentURL string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{"payment_token": token, "payment_url": paymentURL}).Error
}

func (r *gormOrderRepository) FindByCode(ctx context.Context, code string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		First(&order, "order_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// TransitionStatus moves the order only while it still has the from status.
func (r *gormOrderRepository) TransitionStatus(ctx context.Context, tx *gorm.DB, id uint, from, to string) (bool, error) {
	if tx == nil {
		tx = r.db
	}
	res := tx.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
