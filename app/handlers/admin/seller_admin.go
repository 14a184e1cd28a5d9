package admin

import (
	"net/http"

	"github.com/Rakhulsr/go-marketplace/app/helpers"
	"github.com/Rakhulsr/go-marketplace/app/models/other"
)

func (h *AdminHandler) PendingSellers(w http.ResponseWriter, r *http.Request) {
	pending, err := h.sellerSvc.ListPending(r.Context())
	if err != nil {
		helpers.WriteError(h.render, w, "PendingSellers", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Pending sellers loaded.", pending)
}

func (h *AdminHandler) ApproveSeller(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r)
	if err != nil {
		helpers.WriteError(h.render, w, "ApproveSeller", err)
		return
	}

	profile, err := h.sellerSvc.Approve(r.Context(), id)
	if err != nil {
		helpers.WriteError(h.render, w, "ApproveSeller", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Seller approved.", other.NewSellerProfileSummary(profile))
}

func (h *AdminHandler) RejectSeller(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r)
	if err != nil {
		helpers.WriteError(h.render, w, "RejectSeller", err)
		return
	}

	profile, err := h.sellerSvc.Reject(r.Context(), id)
	if err != nil {
		helpers.WriteError(h.render, w, "RejectSeller", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Seller rejected.", other.NewSellerProfileSummary(profile))
}
