package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"gorm.io/gorm"
)

type CategoryWithCount struct {
	ID           uint
	Name         string
	Slug         string
	IsTechnical  bool
	DisplayOrder int
	ProductCount int64
}

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	FindActiveByID(ctx context.Context, id uint) (*models.Category, error)
	ListActive(ctx context.Context) ([]models.Category, error)
	ListActiveWithProductCount(ctx context.Context) ([]CategoryWithCount, error)
	CountActive(ctx context.Context) (int64, error)
	NameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
	CountActiveProducts(ctx context.Context, id uint) (int64, error)
	SoftDelete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) FindActiveByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ListActive(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("display_order asc, id asc").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) ListActiveWithProductCount(ctx context.Context) ([]CategoryWithCount, error) {
	var rows []CategoryWithCount
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Select("categories.*, (SELECT COUNT(*) FROM products WHERE products.category_id = categories.id AND products.is_deleted = ?) AS product_count", false).
		Where("categories.is_deleted = ?", false).
		Order("categories.display_order asc, categories.id asc").
		Scan(&rows).Error
	if err != nil {
		log.Printf("ListActiveWithProductCount: Failed to list categories: %v", err)
		return nil, fmt.Errorf("failed to list categories with product count: %w", err)
	}
	return rows, nil
}

func (r *categoryRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Where("is_deleted = ?", false).Count(&count).Error
	return count, err
}

// NameTaken compares names case-insensitively among non-deleted categories.
func (r *categoryRepository) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("LOWER(name) = ? AND is_deleted = ? AND id <> ?", strings.ToLower(strings.TrimSpace(name)), false, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *categoryRepository) CountActiveProducts(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("category_id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	return count, err
}

func (r *categoryRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
