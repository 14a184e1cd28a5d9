package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"gorm.io/gorm"
)

type SellerProfileRepositoryImpl interface {
	Create(ctx context.Context, profile *models.SellerProfile) error
	FindByID(ctx context.Context, id uint) (*models.SellerProfile, error)
	FindByUserID(ctx context.Context, userID string) (*models.SellerProfile, error)
	ListByStatus(ctx context.Context, status models.SellerStatus) ([]models.SellerProfile, error)
	TransitionStatus(ctx context.Context, tx *gorm.DB, id uint, from, to models.SellerStatus) (bool, error)
}

type sellerProfileRepository struct {
	db *gorm.DB
}

func NewSellerProfileRepository(db *gorm.DB) SellerProfileRepositoryImpl {
	return &sellerProfileRepository{db: db}
}

func (r *sellerProfileRepository) Create(ctx context.Context, profile *models.SellerProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *sellerProfileRepository) FindByID(ctx context.Context, id uint) (*models.SellerProfile, error) {
	var profile models.SellerProfile
	err := r.db.WithContext(ctx).Preload("User").First(&profile, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// FindByUserID also returns deleted profiles: a user may only ever hold one.
func (r *sellerProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.SellerProfile, error) {
	var profile models.SellerProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *sellerProfileRepository) ListByStatus(ctx context.Context, status models.SellerStatus) ([]models.SellerProfile, error) {
	var profiles []models.SellerProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ? AND is_deleted = ?", status, false).
		Order("id asc").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// TransitionStatus moves a profile from one status to another and reports
// false when the profile was not in the expected status.
func (r *sellerProfileRepository) TransitionStatus(ctx context.Context, tx *gorm.DB, id uint, from, to models.SellerStatus) (bool, error) {
	if tx == nil {
		tx = r.db
	}
	res := tx.WithContext(ctx).
		Model(&models.SellerProfile{}).
		Where("id = ? AND status = ? AND is_deleted = ?", id, from, false).
		Updates(map[string]interface{}{
			"status":      to,
			"is_verified": to == models.SellerStatusApproved,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
