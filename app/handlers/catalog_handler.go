package handlers

import (
	"net/http"

	"github.com/Rakhulsr/go-marketplace/app/helpers"
	"github.com/Rakhulsr/go-marketplace/app/services"
	"github.com/unrolled/render"
)

// CatalogHandler serves the public lookup lists used by storefront filters.
type CatalogHandler struct {
	render      *render.Render
	categorySvc *services.CategoryService
	brandSvc    *services.BrandService
	sellerSvc   *services.SellerService
}

func NewCatalogHandler(r *render.Render, categorySvc *services.CategoryService, brandSvc *services.BrandService, sellerSvc *services.SellerService) *CatalogHandler {
	return &CatalogHandler{
		render:      r,
		categorySvc: categorySvc,
		brandSvc:    brandSvc,
		sellerSvc:   sellerSvc,
	}
}

func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	items, err := h.categorySvc.ListPublic(r.Context())
	if err != nil {
		helpers.WriteError(h.render, w, "Categories", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Categories loaded.", items)
}

func (h *CatalogHandler) Brands(w http.ResponseWriter, r *http.Request) {
	items, err := h.brandSvc.ListPublic(r.Context())
	if err != nil {
		helpers.WriteError(h.render, w, "Brands", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Brands loaded.", items)
}

func (h *CatalogHandler) Sellers(w http.ResponseWriter, r *http.Request) {
	items, err := h.sellerSvc.ListApproved(r.Context())
	if err != nil {
		helpers.WriteError(h.render, w, "Sellers", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Sellers loaded.", items)
}
