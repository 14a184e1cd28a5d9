package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Rakhulsr/go-marketplace/app/auth"
	"github.com/Rakhulsr/go-marketplace/app/cache"
	"github.com/Rakhulsr/go-marketplace/app/errs"
	"github.com/Rakhulsr/go-marketplace/app/helpers"
	"github.com/Rakhulsr/go-marketplace/app/messaging"
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/other"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"gorm.io/gorm"
)

type SellerService struct {
	db         *gorm.DB
	sellerRepo repositories.SellerProfileRepositoryImpl
	userRepo   repositories.UserRepositoryImpl
	publisher  messaging.Publisher
	cache      cache.CatalogCache
}

func NewSellerService(
	db *gorm.DB,
	sellerRepo repositories.SellerProfileRepositoryImpl,
	userRepo repositories.UserRepositoryImpl,
	publisher messaging.Publisher,
	catalogCache cache.CatalogCache,
) *SellerService {
	return &SellerService{
		db:         db,
		sellerRepo: sellerRepo,
		userRepo:   userRepo,
		publisher:  publisher,
		cache:      catalogCache,
	}
}

// Apply opens a Pending application. A user holds at most one profile, so a
// rejected applicant cannot apply again.
func (s *SellerService) Apply(ctx context.Context, userID string, req other.BecomeSellerRequest) (*models.SellerProfile, error) {
	if userID == "" {
		return nil, errs.ErrNotAuthenticated
	}
	req.ShopName = strings.TrimSpace(req.ShopName)
	req.Description = strings.TrimSpace(req.Description)
	if err := helpers.Validate.Struct(req); err != nil {
		return nil, err
	}

	existing, err := s.sellerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check seller profile: %w", err)
	}
	if existing != nil {
		return nil, errs.Conflict("user already has a seller profile with status %s", existing.Status)
	}

	profile := &models.SellerProfile{
		UserID:      userID,
		ShopName:    req.ShopName,
		Description: req.Description,
		Status:      models.SellerStatusPending,
	}
	if err := s.sellerRepo.Create(ctx, profile); err != nil {
		if again, _ := s.sellerRepo.FindByUserID(ctx, userID); again != nil {
			return nil, errs.Conflict("user already has a seller profile with status %s", again.Status)
		}
		return nil, fmt.Errorf("failed to create seller profile: %w", err)
	}
	return profile, nil
}

func (s *SellerService) ListPending(ctx context.Context) ([]other.PendingSellerResponse, error) {
	profiles, err := s.sellerRepo.ListByStatus(ctx, models.SellerStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending sellers: %w", err)
	}

	out := make([]other.PendingSellerResponse, 0, len(profiles))
	for _, p := range profiles {
		email := ""
		if p.User != nil {
			email = p.User.Email
		}
		out = append(out, other.PendingSellerResponse{
			ID:          p.ID,
			ShopName:    p.ShopName,
			Description: p.Description,
			UserEmail:   email,
			AppliedAt:   p.CreatedAt,
		})
	}
	return out, nil
}

// Approve moves a Pending profile to Approved and grants the Seller role in
// the same transaction.
func (s *SellerService) Approve(ctx context.Context, profileID uint) (*models.SellerProfile, error) {
	profile, err := s.sellerRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seller profile: %w", err)
	}
	if profile == nil {
		return nil, errs.NotFound("seller profile %d", profileID)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		moved, err := s.sellerRepo.TransitionStatus(ctx, tx, profile.ID, models.SellerStatusPending, models.SellerStatusApproved)
		if err != nil {
			return err
		}
		if !moved {
			return errs.Conflict("seller profile %d is %s, only pending profiles can be approved", profile.ID, profile.Status)
		}
		return s.userRepo.AddRole(ctx, tx, profile.UserID, string(auth.RoleSeller))
	})
	if err != nil {
		return nil, err
	}
	profile.Status = models.SellerStatusApproved
	profile.IsVerified = true

	if err := s.cache.Invalidate(ctx, cache.KeySellers); err != nil {
		log.Printf("Approve: failed to invalidate seller cache: %v", err)
	}
	event := messaging.SellerApproved{
		SellerProfileID: profile.ID,
		UserID:          profile.UserID,
		ShopName:        profile.ShopName,
		ApprovedAt:      time.Now().UTC(),
	}
	if err := s.publisher.PublishEvent(ctx, messaging.TopicSellerApproved, profile.UserID, event); err != nil {
		log.Printf("Approve: failed to publish %s for profile %d: %v", messaging.TopicSellerApproved, profile.ID, err)
	}
	return profile, nil
}

func (s *SellerService) Reject(ctx context.Context, profileID uint) (*models.SellerProfile, error) {
	profile, err := s.sellerRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seller profile: %w", err)
	}
	if profile == nil {
		return nil, errs.NotFound("seller profile %d", profileID)
	}

	moved, err := s.sellerRepo.TransitionStatus(ctx, nil, profile.ID, models.SellerStatusPending, models.SellerStatusRejected)
	if err != nil {
		return nil, fmt.Errorf("failed to reject seller profile: %w", err)
	}
	if !moved {
		return nil, errs.Conflict("seller profile %d is %s, only pending profiles can be rejected", profile.ID, profile.Status)
	}
	profile.Status = models.SellerStatusRejected
	return profile, nil
}

// ListApproved backs the public seller directory.
func (s *SellerService) ListApproved(ctx context.Context) ([]other.NamedItem, error) {
	var items []other.NamedItem
	if hit, err := s.cache.Get(ctx, cache.KeySellers, &items); err != nil {
		log.Printf("ListApproved: cache read failed: %v", err)
	} else if hit {
		return items, nil
	}

	profiles, err := s.sellerRepo.ListByStatus(ctx, models.SellerStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}
	items = make([]other.NamedItem, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, other.NamedItem{ID: p.ID, Name: p.ShopName})
	}

	if err := s.cache.Set(ctx, cache.KeySellers, items); err != nil {
		log.Printf("ListApproved: cache write failed: %v", err)
	}
	return items, nil
}
