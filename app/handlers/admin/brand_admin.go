package admin

import (
	"net/http"

	"github.com/Rakhulsr/go-marketplace/app/helpers"
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/other"
)

func brandResponse(b *models.Brand) other.BrandResponse {
	return other.BrandResponse{ID: b.ID, Name: b.Name, Description: b.Description}
}

func (h *AdminHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brandSvc.List(r.Context())
	if err != nil {
		helpers.WriteError(h.render, w, "ListBrands", err)
		return
	}

	resp := make([]other.BrandResponse, 0, len(brands))
	for i := range brands {
		resp = append(resp, brandResponse(&brands[i]))
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Brands loaded.", resp)
}

func (h *AdminHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req other.BrandRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteError(h.render, w, "CreateBrand", err)
		return
	}

	brand, err := h.brandSvc.Create(r.Context(), req)
	if err != nil {
		helpers.WriteError(h.render, w, "CreateBrand", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusCreated, "Brand created.", brandResponse(brand))
}

func (h *AdminHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r)
	if err != nil {
		helpers.WriteError(h.render, w, "UpdateBrand", err)
		return
	}
	var req other.BrandRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteError(h.render, w, "UpdateBrand", err)
		return
	}

	brand, err := h.brandSvc.Update(r.Context(), id, req)
	if err != nil {
		helpers.WriteError(h.render, w, "UpdateBrand", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Brand updated.", brandResponse(brand))
}

func (h *AdminHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r)
	if err != nil {
		helpers.WriteError(h.render, w, "DeleteBrand", err)
		return
	}

	if err := h.brandSvc.Delete(r.Context(), id); err != nil {
		helpers.WriteError(h.render, w, "DeleteBrand", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Brand deleted.", nil)
}
