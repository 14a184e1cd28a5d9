package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductSort string

const (
	SortByID        ProductSort = ""
	SortByPriceAsc  ProductSort = "priceAsc"
	SortByPriceDesc ProductSort = "priceDesc"
	SortByNameAsc   ProductSort = "nameAsc"
	SortByNameDesc  ProductSort = "nameDesc"
)

type ProductFilter struct {
	CategoryID *uint
	BrandID    *uint
	SellerID   *uint
	SortBy     ProductSort
	Offset     int
	Limit      int
}

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	FindActiveByID(ctx context.Context, id uint) (*models.Product, error)
	FindPublishedByID(ctx context.Context, id uint) (*models.Product, error)
	ListPublished(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error)
	ListBySeller(ctx context.Context, sellerProfileID uint) ([]models.Product, error)
	SoftDelete(ctx context.Context, id uint) error
	LockByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]models.Product, error)
	DecrementStock(ctx context.Context, tx *gorm.DB, id uint, qty int) (bool, error)
	IncrementStock(ctx context.Context, tx *gorm.DB, id uint, qty int) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db: db}
}

func (r *productRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category").
		Preload("Brand").
		Preload("SellerProfile")
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

func (r *productRepository) FindActiveByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.withDetails(ctx).First(&product, "products.id = ? AND products.is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindPublishedByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.withDetails(ctx).
		First(&product, "products.id = ? AND products.is_deleted = ? AND products.is_published = ?", id, false, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ListPublished(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("products.is_deleted = ? AND products.is_published = ?", false, true)

	if filter.CategoryID != nil {
		query = query.Where("products.category_id = ?", *filter.CategoryID)
	}
	if filter.BrandID != nil {
		query = query.Where("products.brand_id = ?", *filter.BrandID)
	}
	if filter.SellerID != nil {
		query = query.Where("products.seller_profile_id = ?", *filter.SellerID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	switch filter.SortBy {
	case SortByPriceAsc:
		query = query.Order("products.price asc").Order("products.id asc")
	case SortByPriceDesc:
		query = query.Order("products.price desc").Order("products.id asc")
	case SortByNameAsc:
		query = query.Order("products.name asc").Order("products.id asc")
	case SortByNameDesc:
		query = query.Order("products.name desc").Order("products.id asc")
	default:
		query = query.Order("products.id asc")
	}

	var products []models.Product
	err := query.
		Preload("Category").
		Preload("Brand").
		Preload("SellerProfile").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

func (r *productRepository) ListBySeller(ctx context.Context, sellerProfileID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.withDetails(ctx).
		Where("products.seller_profile_id = ? AND products.is_deleted = ?", sellerProfileID, false).
		Order("products.id desc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// SoftDelete also unpublishes so stale cart lines cannot be checked out.
func (r *productRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_deleted": true, "is_published": false}).Error
}

// LockByIDs takes row locks in ascending id order so concurrent checkouts
// touching the same products cannot deadlock.
func (r *productRepository) LockByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]models.Product, error) {
	var products []models.Product
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// DecrementStock only succeeds while enough stock is left; false means the
// guard rejected the update.
func (r *productRepository) DecrementStock(ctx context.Context, tx *gorm.DB, id uint, qty int) (bool, error) {
	res := tx.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *productRepository) IncrementStock(ctx context.Context, tx *gorm.DB, id uint, qty int) error {
	return tx.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", qty)).Error
}
