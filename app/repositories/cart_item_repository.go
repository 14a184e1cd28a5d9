package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemRepositoryImpl interface {
	Add(ctx context.Context, item *models.CartItem) error
	Update(ctx context.Context, item *models.CartItem) error
	Delete(ctx context.Context, id uint) error
	GetByUserAndProduct(ctx context.Context, userID string, productID uint) (*models.CartItem, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID string) ([]models.CartItem, error)
	ClearByUser(ctx context.Context, tx *gorm.DB, userID string) error
}

type CartItemRepository struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepositoryImpl {
	return &CartItemRepository{db: db}
}

func (r *CartItemRepository) Add(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

func (r *CartItemRepository) Update(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error
}

func (r *CartItemRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.CartItem{}, id).Error
}

func (r *CartItemRepository) GetByUserAndProduct(ctx context.Context, userID string, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// ListByUser preloads each line's product. Pass tx to read inside a checkout.
func (r *CartItemRepository) ListByUser(ctx context.Context, tx *gorm.DB, userID string) ([]models.CartItem, error) {
	if tx == nil {
		tx = r.db
	}
	var items []models.CartItem
	err := tx.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartItemRepository) ClearByUser(ctx context.Context, tx *gorm.DB, userID string) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
