package handlers

import (
	"net/http"

	"github.com/Rakhulsr/go-marketplace/app/auth"
	"github.com/Rakhulsr/go-marketplace/app/helpers"
	"github.com/Rakhulsr/go-marketplace/app/models/other"
	"github.com/Rakhulsr/go-marketplace/app/services"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	render    *render.Render
	authSvc   *services.AuthService
	sellerSvc *services.SellerService
}

func NewAuthHandler(r *render.Render, authSvc *services.AuthService, sellerSvc *services.SellerService) *AuthHandler {
	return &AuthHandler{
		render:    r,
		authSvc:   authSvc,
		sellerSvc: sellerSvc,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req other.RegisterRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteError(h.render, w, "Register", err)
		return
	}

	user, err := h.authSvc.Register(r.Context(), req)
	if err != nil {
		helpers.WriteError(h.render, w, "Register", err)
		return
	}

	helpers.JSONSuccess(h.render, w, http.StatusOK, "Registration successful.", map[string]interface{}{
		"id":       user.ID,
		"email":    user.Email,
		"fullName": user.FullName,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req other.LoginRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteError(h.render, w, "Login", err)
		return
	}

	resp, err := h.authSvc.Login(r.Context(), req)
	if err != nil {
		helpers.WriteError(h.render, w, "Login", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Login successful.", resp)
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	resp, err := h.authSvc.Profile(r.Context(), auth.IdentityFrom(r.Context()))
	if err != nil {
		helpers.WriteError(h.render, w, "Profile", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Profile loaded.", resp)
}

func (h *AuthHandler) BecomeSeller(w http.ResponseWriter, r *http.Request) {
	var req other.BecomeSellerRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteError(h.render, w, "BecomeSeller", err)
		return
	}

	profile, err := h.sellerSvc.Apply(r.Context(), auth.IdentityFrom(r.Context()).UserID(), req)
	if err != nil {
		helpers.WriteError(h.render, w, "BecomeSeller", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusCreated, "Seller application submitted and waiting for approval.", other.NewSellerProfileSummary(profile))
}
