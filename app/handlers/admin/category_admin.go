package admin

import (
	"net/http"

	"github.com/Rakhulsr/go-marketplace/app/helpers"
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/other"
)

func categoryResponse(c *models.Category) other.CategoryAdminResponse {
	return other.CategoryAdminResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Kind(),
		IsTechnical:  c.IsTechnical,
		DisplayOrder: c.DisplayOrder,
	}
}

func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	rows, err := h.categorySvc.ListAdmin(r.Context())
	if err != nil {
		helpers.WriteError(h.render, w, "ListCategories", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Categories loaded.", rows)
}

func (h *AdminHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r)
	if err != nil {
		helpers.WriteError(h.render, w, "GetCategory", err)
		return
	}

	category, err := h.categorySvc.Get(r.Context(), id)
	if err != nil {
		helpers.WriteError(h.render, w, "GetCategory", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Category loaded.", categoryResponse(category))
}

func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req other.CategoryRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteError(h.render, w, "CreateCategory", err)
		return
	}

	category, err := h.categorySvc.Create(r.Context(), req)
	if err != nil {
		helpers.WriteError(h.render, w, "CreateCategory", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusCreated, "Category created.", categoryResponse(category))
}

func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r)
	if err != nil {
		helpers.WriteError(h.render, w, "UpdateCategory", err)
		return
	}
	var req other.CategoryRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteError(h.render, w, "UpdateCategory", err)
		return
	}

	category, err := h.categorySvc.Update(r.Context(), id, req)
	if err != nil {
		helpers.WriteError(h.render, w, "UpdateCategory", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Category updated.", categoryResponse(category))
}

func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r)
	if err != nil {
		helpers.WriteError(h.render, w, "DeleteCategory", err)
		return
	}

	if err := h.categorySvc.Delete(r.Context(), id); err != nil {
		helpers.WriteError(h.render, w, "DeleteCategory", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Category deleted.", nil)
}
