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

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryImpl
	cache        cache.CatalogCache
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryImpl, catalogCache cache.CatalogCache) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, cache: catalogCache}
}

func (s *CategoryService) ListAdmin(ctx context.Context) ([]other.CategoryAdminResponse, error) {
	rows, err := s.categoryRepo.ListActiveWithProductCount(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]other.CategoryAdminResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, other.CategoryAdminResponse{
			ID:           r.ID,
			Name:         r.Name,
			Description:  models.Category{IsTechnical: r.IsTechnical}.Kind(),
			IsTechnical:  r.IsTechnical,
			DisplayOrder: r.DisplayOrder,
			ProductCount: r.ProductCount,
		})
	}
	return out, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load category %d: %w", id, err)
	}
	if category == nil {
		return nil, errs.NotFound("category %d", id)
	}
	return category, nil
}

// Create appends the category after the existing ones unless a display order is given.
func (s *CategoryService) Create(ctx context.Context, req other.CategoryRequest) (*models.Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := helpers.Validate.Struct(req); err != nil {
		return nil, err
	}

	taken, err := s.categoryRepo.NameTaken(ctx, req.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if taken {
		return nil, errs.Conflict("category %q already exists", req.Name)
	}

	order := 0
	if req.DisplayOrder != nil {
		order = *req.DisplayOrder
	} else {
		count, err := s.categoryRepo.CountActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count categories: %w", err)
		}
		order = int(count)
	}

	category := &models.Category{
		Name:         req.Name,
		Slug:         helpers.GenerateSlug(req.Name),
		IsTechnical:  req.IsTechnical,
		DisplayOrder: order,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	s.invalidate(ctx)
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, req other.CategoryRequest) (*models.Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := helpers.Validate.Struct(req); err != nil {
		return nil, err
	}

	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.categoryRepo.NameTaken(ctx, req.Name, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if taken {
		return nil, errs.Conflict("category %q already exists", req.Name)
	}

	category.Name = req.Name
	category.Slug = helpers.GenerateSlug(req.Name)
	category.IsTechnical = req.IsTechnical
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category %d: %w", id, err)
	}
	s.invalidate(ctx)
	return category, nil
}

// Delete is refused while any non-deleted product still uses the category.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	category, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.categoryRepo.CountActiveProducts(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count products of category %d: %w", id, err)
	}
	if count > 0 {
		return errs.Conflict("category %q cannot be deleted: %d products attached", category.Name, count)
	}

	if err := s.categoryRepo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *CategoryService) ListPublic(ctx context.Context) ([]other.NamedItem, error) {
	var items []other.NamedItem
	if hit, err := s.cache.Get(ctx, cache.KeyCategories, &items); err != nil {
		log.Printf("CategoryService.ListPublic: cache read failed: %v", err)
	} else if hit {
		return items, nil
	}

	categories, err := s.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	items = make([]other.NamedItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, other.NamedItem{ID: c.ID, Name: c.Name})
	}

	if err := s.cache.Set(ctx, cache.KeyCategories, items); err != nil {
		log.Printf("CategoryService.ListPublic: cache write failed: %v", err)
	}
	return items, nil
}

func (s *CategoryService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cache.KeyCategories); err != nil {
		log.Printf("CategoryService: failed to invalidate cache: %v", err)
	}
}
