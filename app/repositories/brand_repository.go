package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"gorm.io/gorm"
)

type BrandRepositoryImpl interface {
	Create(ctx context.Context, brand *models.Brand) error
	Update(ctx context.Context, brand *models.Brand) error
	FindActiveByID(ctx context.Context, id uint) (*models.Brand, error)
	ListActive(ctx context.Context) ([]models.Brand, error)
	NameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
	CountActiveProducts(ctx context.Context, id uint) (int64, error)
	SoftDelete(ctx context.Context, id uint) error
}

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepositoryImpl {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *brandRepository) Update(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}

func (r *brandRepository) FindActiveByID(ctx context.Context, id uint) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).First(&brand, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) ListActive(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.WithContext(ctx).Where("is_deleted = ?", false).Order("name asc").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// NameTaken checks every brand, deleted or not, because the name column is unique.
func (r *brandRepository) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Brand{}).
		Where("LOWER(name) = ? AND id <> ?", strings.ToLower(strings.TrimSpace(name)), excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *brandRepository) CountActiveProducts(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("brand_id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	return count, err
}

func (r *brandRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Brand{}).Where("id = ?", id).Update("is_deleted", true).Error
}
