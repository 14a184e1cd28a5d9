package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Rakhulsr/go-marketplace/app/cache"
	"github.com/Rakhulsr/go-marketplace/app/errs"
	"github.com/Rakhulsr/go-marketplace/app/helpers"
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/other"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
)

type BrandService struct {
	brandRepo repositories.BrandRepositoryImpl
	cache     cache.CatalogCache
}

func NewBrandService(brandRepo repositories.BrandRepositoryImpl, catalogCache cache.CatalogCache) *BrandService {
	return &BrandService{brandRepo: brandRepo, cache: catalogCache}
}

func (s *BrandService) List(ctx context.Context) ([]models.Brand, error) {
	brands, err := s.brandRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}

func (s *BrandService) Create(ctx context.Context, req other.BrandRequest) (*models.Brand, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := helpers.Validate.Struct(req); err != nil {
		return nil, err
	}

	taken, err := s.brandRepo.NameTaken(ctx, req.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check brand name: %w", err)
	}
	if taken {
		return nil, errs.Conflict("brand %q already exists", req.Name)
	}

	brand := &models.Brand{Name: req.Name, Description: strings.TrimSpace(req.Description)}
	if err := s.brandRepo.Create(ctx, brand); err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	s.invalidate(ctx)
	return brand, nil
}

func (s *BrandService) Update(ctx context.Context, id uint, req other.BrandRequest) (*models.Brand, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := helpers.Validate.Struct(req); err != nil {
		return nil, err
	}

	brand, err := s.brandRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load brand %d: %w", id, err)
	}
	if brand == nil {
		return nil, errs.NotFound("brand %d", id)
	}

	taken, err := s.brandRepo.NameTaken(ctx, req.Name, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check brand name: %w", err)
	}
	if taken {
		return nil, errs.Conflict("brand %q already exists", req.Name)
	}

	brand.Name = req.Name
	brand.Description = strings.TrimSpace(req.Description)
	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return nil, fmt.Errorf("failed to update brand %d: %w", id, err)
	}
	s.invalidate(ctx)
	return brand, nil
}

func (s *BrandService) Delete(ctx context.Context, id uint) error {
	brand, err := s.brandRepo.FindActiveByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load brand %d: %w", id, err)
	}
	if brand == nil {
		return errs.NotFound("brand %d", id)
	}

	count, err := s.brandRepo.CountActiveProducts(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count products of brand %d: %w", id, err)
	}
	if count > 0 {
		return errs.Conflict("brand %q cannot be deleted: %d products attached", brand.Name, count)
	}

	if err := s.brandRepo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete brand %d: %w", id, err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *BrandService) ListPublic(ctx context.Context) ([]other.NamedItem, error) {
	var items []other.NamedItem
	if hit, err := s.cache.Get(ctx, cache.KeyBrands, &items); err != nil {
		log.Printf("BrandService.ListPublic: cache read failed: %v", err)
	} else if hit {
		return items, nil
	}

	brands, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	items = make([]other.NamedItem, 0, len(brands))
	for _, b := range brands {
		items = append(items, other.NamedItem{ID: b.ID, Name: b.Name})
	}

	if err := s.cache.Set(ctx, cache.KeyBrands, items); err != nil {
		log.Printf("BrandService.ListPublic: cache write failed: %v", err)
	}
	return items, nil
}

func (s *BrandService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cache.KeyBrands); err != nil {
		log.Printf("BrandService: failed to invalidate cache: %v", err)
	}
}
