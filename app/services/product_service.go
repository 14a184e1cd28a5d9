package services

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/Rakhulsr/go-marketplace/app/auth"
	"github.com/Rakhulsr/go-marketplace/app/errs"
	"github.com/Rakhulsr/go-marketplace/app/helpers"
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/other"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"github.com/Rakhulsr/go-marketplace/app/utils/storage"
)

const (
	DefaultPageSize = 18
	MaxPageSize     = 50
)

type ProductQuery struct {
	CategoryID *uint
	BrandID    *uint
	SellerID   *uint
	SortBy     string
	PageNumber int
	// PageSize is nil when the caller did not ask for a size.
	PageSize *int
}

// Normalize applies the paging defaults and bounds. An absent page size gets
// the default, an explicit one is clamped to [1, MaxPageSize].
func (q ProductQuery) Normalize() ProductQuery {
	if q.PageNumber < 1 {
		q.PageNumber = 1
	}
	size := DefaultPageSize
	if q.PageSize != nil {
		size = *q.PageSize
	}
	if size < 1 {
		size = 1
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	q.PageSize = &size
	switch repositories.ProductSort(q.SortBy) {
	case repositories.SortByPriceAsc, repositories.SortByPriceDesc, repositories.SortByNameAsc, repositories.SortByNameDesc:
	default:
		q.SortBy = string(repositories.SortByID)
	}
	return q
}

type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

type ProductService struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	brandRepo    repositories.BrandRepositoryImpl
	sellerRepo   repositories.SellerProfileRepositoryImpl
	images       storage.ImageStore
}

func NewProductService(
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	brandRepo repositories.BrandRepositoryImpl,
	sellerRepo repositories.SellerProfileRepositoryImpl,
	images storage.ImageStore,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		sellerRepo:   sellerRepo,
		images:       images,
	}
}

func (s *ProductService) List(ctx context.Context, q ProductQuery) ([]models.Product, int64, ProductQuery, error) {
	q = q.Normalize()
	products, total, err := s.productRepo.ListPublished(ctx, repositories.ProductFilter{
		CategoryID: q.CategoryID,
		BrandID:    q.BrandID,
		SellerID:   q.SellerID,
		SortBy:     repositories.ProductSort(q.SortBy),
		Offset:     (q.PageNumber - 1) * *q.PageSize,
		Limit:      *q.PageSize,
	})
	if err != nil {
		return nil, 0, q, err
	}
	return products, total, q, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.productRepo.FindPublishedByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %d: %w", id, err)
	}
	if product == nil {
		return nil, errs.NotFound("product %d", id)
	}
	return product, nil
}

func (s *ProductService) ListMine(ctx context.Context, seller *models.SellerProfile) ([]models.Product, error) {
	products, err := s.productRepo.ListBySeller(ctx, seller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products of seller %d: %w", seller.ID, err)
	}
	return products, nil
}

func (s *ProductService) Create(ctx context.Context, seller *models.SellerProfile, form other.ProductForm, image *ImageUpload) (*models.Product, error) {
	in, err := s.prepare(ctx, form, image)
	if err != nil {
		return nil, err
	}

	product := &models.Product{SellerProfileID: seller.ID, IsPublished: true}
	apply(product, in)
	if err := s.productRepo.Create(ctx, product); err != nil {
		s.discardImage(ctx, image, in.ImageURL)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return s.reload(ctx, product.ID)
}

// Update only lets the owning seller edit the product.
func (s *ProductService) Update(ctx context.Context, seller *models.SellerProfile, id uint, form other.ProductForm, image *ImageUpload) (*models.Product, error) {
	product, err := s.productRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %d: %w", id, err)
	}
	if product == nil {
		return nil, errs.NotFound("product %d", id)
	}
	if product.SellerProfileID != seller.ID {
		return nil, errs.Forbidden("product %d belongs to another seller", id)
	}

	in, err := s.prepare(ctx, form, image)
	if err != nil {
		return nil, err
	}
	if in.ImageURL == "" {
		in.ImageURL = product.ImageURL
	}

	apply(product, in)
	product.Category, product.Brand, product.SellerProfile = nil, nil, nil
	if err := s.productRepo.Update(ctx, product); err != nil {
		s.discardImage(ctx, image, in.ImageURL)
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return s.reload(ctx, product.ID)
}

// Delete is allowed for admins and for the seller owning the product.
func (s *ProductService) Delete(ctx context.Context, actor auth.Identity, id uint) error {
	if !actor.IsAuthenticated() {
		return errs.ErrNotAuthenticated
	}

	product, err := s.productRepo.FindActiveByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load product %d: %w", id, err)
	}
	if product == nil {
		return errs.NotFound("product %d", id)
	}

	if !actor.HasRole(auth.RoleAdmin) {
		if !actor.HasRole(auth.RoleSeller) {
			return errs.Forbidden("only the owning seller or an admin can delete product %d", id)
		}
		profile, err := s.sellerRepo.FindByUserID(ctx, actor.UserID())
		if err != nil {
			return fmt.Errorf("failed to load seller profile: %w", err)
		}
		if profile == nil || profile.ID != product.SellerProfileID {
			return errs.Forbidden("product %d belongs to another seller", id)
		}
	}

	if err := s.productRepo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}

func (s *ProductService) prepare(ctx context.Context, form other.ProductForm, image *ImageUpload) (other.ProductInput, error) {
	if err := helpers.Validate.Struct(form); err != nil {
		return other.ProductInput{}, err
	}
	in, err := form.ToInput()
	if err != nil {
		return in, err
	}

	category, err := s.categoryRepo.FindActiveByID(ctx, in.CategoryID)
	if err != nil {
		return in, fmt.Errorf("failed to load category %d: %w", in.CategoryID, err)
	}
	if category == nil {
		return in, errs.Validation("category %d does not exist", in.CategoryID)
	}

	brand, err := s.brandRepo.FindActiveByID(ctx, in.BrandID)
	if err != nil {
		return in, fmt.Errorf("failed to load brand %d: %w", in.BrandID, err)
	}
	if brand == nil {
		return in, errs.Validation("brand %d does not exist", in.BrandID)
	}

	if image != nil {
		url, err := s.images.Save(ctx, image.Filename, image.Reader)
		if err != nil {
			return in, errs.Validation("image: %v", err)
		}
		in.ImageURL = url
	}
	return in, nil
}

// discardImage removes a freshly uploaded image whose product row was never written.
func (s *ProductService) discardImage(ctx context.Context, image *ImageUpload, url string) {
	if image == nil || url == "" {
		return
	}
	if err := s.images.Delete(ctx, url); err != nil {
		log.Printf("ProductService: failed to remove orphaned image %s: %v", url, err)
	}
}

func (s *ProductService) reload(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.productRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload product %d: %w", id, err)
	}
	if product == nil {
		return nil, errs.NotFound("product %d", id)
	}
	return product, nil
}

func apply(p *models.Product, in other.ProductInput) {
	p.Name = in.Name
	p.Slug = helpers.GenerateSlug(in.Name)
	p.Stock = in.Stock
	p.Price = in.Price
	p.Description = in.Description
	p.CategoryID = in.CategoryID
	p.BrandID = in.BrandID
	p.ImageURL = in.ImageURL
	p.ErgonomyLevel = in.ErgonomyLevel
	p.ConnectivityType = in.ConnectivityType
	p.SupportedOS = in.SupportedOS
	p.WarrantyMonths = in.WarrantyMonths
}
