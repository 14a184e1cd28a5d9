package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/Rakhulsr/go-marketplace/app/auth"
	"github.com/Rakhulsr/go-marketplace/app/errs"
	"github.com/Rakhulsr/go-marketplace/app/helpers"
	"github.com/Rakhulsr/go-marketplace/app/models/other"
	"github.com/Rakhulsr/go-marketplace/app/services"
	"github.com/Rakhulsr/go-marketplace/app/utils/format"
	"github.com/unrolled/render"
)

const maxProductForm = 10 << 20

type ProductHandler struct {
	render     *render.Render
	productSvc *services.ProductService
	resolver   *auth.Resolver
	money      format.Money
}

func NewProductHandler(r *render.Render, productSvc *services.ProductService, resolver *auth.Resolver, money format.Money) *ProductHandler {
	return &ProductHandler{
		render:     r,
		productSvc: productSvc,
		resolver:   resolver,
		money:      money,
	}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := services.ProductQuery{SortBy: q.Get("sortBy")}

	var err error
	if query.CategoryID, err = optionalID(q.Get("categoryId")); err != nil {
		helpers.WriteError(h.render, w, "ListProducts", err)
		return
	}
	if query.BrandID, err = optionalID(q.Get("brandId")); err != nil {
		helpers.WriteError(h.render, w, "ListProducts", err)
		return
	}
	if query.SellerID, err = optionalID(q.Get("sellerId")); err != nil {
		helpers.WriteError(h.render, w, "ListProducts", err)
		return
	}
	if query.PageNumber, err = optionalInt(q.Get("pageNumber")); err != nil {
		helpers.WriteError(h.render, w, "ListProducts", err)
		return
	}
	if s := q.Get("pageSize"); s != "" {
		size, err := optionalInt(s)
		if err != nil {
			helpers.WriteError(h.render, w, "ListProducts", err)
			return
		}
		query.PageSize = &size
	}

	products, total, query, err := h.productSvc.List(r.Context(), query)
	if err != nil {
		helpers.WriteError(h.render, w, "ListProducts", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Products loaded.", other.ProductPage{
		Items:      other.NewProductResponses(products, h.money),
		PageNumber: query.PageNumber,
		PageSize:   *query.PageSize,
		Total:      total,
	})
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r)
	if err != nil {
		helpers.WriteError(h.render, w, "GetProduct", err)
		return
	}

	product, err := h.productSvc.Get(r.Context(), id)
	if err != nil {
		helpers.WriteError(h.render, w, "GetProduct", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Product loaded.", other.NewProductResponse(*product, h.money))
}

func (h *ProductHandler) MyProducts(w http.ResponseWriter, r *http.Request) {
	seller, err := h.resolver.ResolveSeller(r.Context(), auth.IdentityFrom(r.Context()))
	if err != nil {
		helpers.WriteError(h.render, w, "MyProducts", err)
		return
	}

	products, err := h.productSvc.ListMine(r.Context(), seller)
	if err != nil {
		helpers.WriteError(h.render, w, "MyProducts", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Products loaded.", other.NewProductResponses(products, h.money))
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	seller, err := h.resolver.ResolveSeller(r.Context(), auth.IdentityFrom(r.Context()))
	if err != nil {
		helpers.WriteError(h.render, w, "CreateProduct", err)
		return
	}

	form, image, closeImage, err := readProductForm(r)
	if err != nil {
		helpers.WriteError(h.render, w, "CreateProduct", err)
		return
	}
	defer closeImage()

	product, err := h.productSvc.Create(r.Context(), seller, form, image)
	if err != nil {
		helpers.WriteError(h.render, w, "CreateProduct", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusCreated, "Product created.", other.NewProductResponse(*product, h.money))
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	seller, err := h.resolver.ResolveSeller(r.Context(), auth.IdentityFrom(r.Context()))
	if err != nil {
		helpers.WriteError(h.render, w, "UpdateProduct", err)
		return
	}
	id, err := helpers.PathID(r)
	if err != nil {
		helpers.WriteError(h.render, w, "UpdateProduct", err)
		return
	}

	form, image, closeImage, err := readProductForm(r)
	if err != nil {
		helpers.WriteError(h.render, w, "UpdateProduct", err)
		return
	}
	defer closeImage()

	product, err := h.productSvc.Update(r.Context(), seller, id, form, image)
	if err != nil {
		helpers.WriteError(h.render, w, "UpdateProduct", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Product updated.", other.NewProductResponse(*product, h.money))
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r)
	if err != nil {
		helpers.WriteError(h.render, w, "DeleteProduct", err)
		return
	}

	if err := h.productSvc.Delete(r.Context(), auth.IdentityFrom(r.Context()), id); err != nil {
		helpers.WriteError(h.render, w, "DeleteProduct", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Product deleted.", nil)
}

// readProductForm accepts multipart and urlencoded bodies. The returned close
// func must always be called.
func readProductForm(r *http.Request) (other.ProductForm, *services.ImageUpload, func(), error) {
	noop := func() {}
	if err := r.ParseMultipartForm(maxProductForm); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return other.ProductForm{}, nil, noop, errs.Validation("could not read the form: %v", err)
	}

	form := other.ProductForm{
		ProductName:      r.FormValue("productName"),
		Stock:            r.FormValue("stock"),
		Price:            r.FormValue("price"),
		Description:      r.FormValue("description"),
		CategoryID:       r.FormValue("categoryId"),
		BrandID:          r.FormValue("brandId"),
		ImageURL:         r.FormValue("imageUrl"),
		ErgonomyLevel:    r.FormValue("ergonomyLevel"),
		ConnectivityType: r.FormValue("connectivityType"),
		SupportedOS:      r.FormValue("supportedOS"),
		WarrantyMonths:   r.FormValue("warrantyMonths"),
	}

	var file multipart.File
	var header *multipart.FileHeader
	var err error
	if r.MultipartForm != nil {
		file, header, err = r.FormFile("imageFile")
	} else {
		err = http.ErrMissingFile
	}
	if errors.Is(err, http.ErrMissingFile) {
		return form, nil, noop, nil
	}
	if err != nil {
		return form, nil, noop, errs.Validation("imageFile: %v", err)
	}
	return form, &services.ImageUpload{Filename: header.Filename, Reader: file}, func() { file.Close() }, nil
}

func optionalID(s string) (*uint, error) {
	if s == "" {
		return nil, nil
	}
	id, err := other.ParseID(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.Validation("%q is not a number", s)
	}
	return n, nil
}
