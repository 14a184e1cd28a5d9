package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepositoryImpl interface {
	Create(ctx context.Context, user *models.User, roles ...string) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByEmailWithRoles(ctx context.Context, email string) (*models.User, error)
	AddRole(ctx context.Context, tx *gorm.DB, userID, role string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepositoryImpl {
	return &userRepository{db: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create stores the user and its initial roles in one transaction.
func (r *userRepository) Create(ctx context.Context, user *models.User, roles ...string) error {
	user.Email = normalizeEmail(user.Email)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Roles").Create(user).Error; err != nil {
			return err
		}
		for _, role := range roles {
			if err := r.AddRole(ctx, tx, user.ID, role); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Roles").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", normalizeEmail(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmailWithRoles(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Roles").First(&user, "email = ?", normalizeEmail(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// AddRole is idempotent: granting a role twice is a no-op.
func (r *userRepository) AddRole(ctx context.Context, tx *gorm.DB, userID, role string) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserRole{UserID: userID, Role: role}).Error
}
