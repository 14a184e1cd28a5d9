// Package admin holds the endpoints behind the Admin role gate.
package admin

import (
	"github.com/Rakhulsr/go-marketplace/app/services"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render      *render.Render
	categorySvc *services.CategoryService
	brandSvc    *services.BrandService
	sellerSvc   *services.SellerService
}

func NewAdminHandler(
	render *render.Render,
	categorySvc *services.CategoryService,
	brandSvc *services.BrandService,
	sellerSvc *services.SellerService,
) *AdminHandler {
	return &AdminHandler{
		render:      render,
		categorySvc: categorySvc,
		brandSvc:    brandSvc,
		sellerSvc:   sellerSvc,
	}
}
