package handlers

import (
	"net/http"
	"strconv"

	"github.com/Rakhulsr/go-marketplace/app/auth"
	"github.com/Rakhulsr/go-marketplace/app/helpers"
	"github.com/Rakhulsr/go-marketplace/app/models/other"
	"github.com/Rakhulsr/go-marketplace/app/services"
	"github.com/Rakhulsr/go-marketplace/app/utils/format"
	"github.com/unrolled/render"
)

type CartHandler struct {
	render      *render.Render
	cartSvc     *services.CartService
	checkoutSvc *services.CheckoutService
	money       format.Money
}

func NewCartHandler(r *render.Render, cartSvc *services.CartService, checkoutSvc *services.CheckoutService, money format.Money) *CartHandler {
	return &CartHandler{
		render:      r,
		cartSvc:     cartSvc,
		checkoutSvc: checkoutSvc,
		money:       money,
	}
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.JSONError(h.render, w, http.StatusBadRequest, "Could not read the form.", nil)
		return
	}
	form := other.CartAddForm{
		ProductID: r.FormValue("productId"),
		Quantity:  r.FormValue("quantity"),
	}
	if err := helpers.Validate.Struct(form); err != nil {
		helpers.WriteError(h.render, w, "AddToCart", err)
		return
	}

	productID, err := other.ParseID(form.ProductID)
	if err != nil {
		helpers.WriteError(h.render, w, "AddToCart", err)
		return
	}
	qty, err := strconv.Atoi(form.Quantity)
	if err != nil {
		helpers.JSONError(h.render, w, http.StatusBadRequest, "Quantity must be a whole number.", nil)
		return
	}

	line, err := h.cartSvc.AddItem(r.Context(), auth.IdentityFrom(r.Context()).UserID(), productID, qty)
	if err != nil {
		helpers.WriteError(h.render, w, "AddToCart", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Product added to cart.", map[string]interface{}{
		"productId": line.ProductID,
		"quantity":  line.Quantity,
		"unitPrice": line.UnitPrice,
	})
}

func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.JSONError(h.render, w, http.StatusBadRequest, "Could not read the form.", nil)
		return
	}
	form := other.CartRemoveForm{
		ProductID: r.FormValue("productId"),
		Quantity:  r.FormValue("quantity"),
	}
	if err := helpers.Validate.Struct(form); err != nil {
		helpers.WriteError(h.render, w, "RemoveFromCart", err)
		return
	}

	productID, err := other.ParseID(form.ProductID)
	if err != nil {
		helpers.WriteError(h.render, w, "RemoveFromCart", err)
		return
	}
	var qty *int
	if form.Quantity != "" {
		n, err := strconv.Atoi(form.Quantity)
		if err != nil {
			helpers.JSONError(h.render, w, http.StatusBadRequest, "Quantity must be a whole number.", nil)
			return
		}
		qty = &n
	}

	line, err := h.cartSvc.RemoveItem(r.Context(), auth.IdentityFrom(r.Context()).UserID(), productID, qty)
	if err != nil {
		helpers.WriteError(h.render, w, "RemoveFromCart", err)
		return
	}
	if line == nil {
		helpers.JSONSuccess(h.render, w, http.StatusOK, "Product removed from cart.", nil)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Cart quantity updated.", map[string]interface{}{
		"productId": line.ProductID,
		"quantity":  line.Quantity,
	})
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.cartSvc.GetCart(r.Context(), auth.IdentityFrom(r.Context()).UserID())
	if err != nil {
		helpers.WriteError(h.render, w, "GetCart", err)
		return
	}

	resp := other.CartResponse{
		Items:          make([]other.CartLineResponse, 0, len(view.Items)),
		Total:          view.Total,
		TotalFormatted: h.money.Format(view.Total),
	}
	for _, it := range view.Items {
		line := other.CartLineResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal(),
		}
		if it.Product != nil {
			line.ProductName = it.Product.Name
			line.ImageURL = it.Product.ImageURL
			line.CurrentPrice = it.Product.Price
			line.Available = it.Product.Purchasable() && it.Product.Stock >= it.Quantity
		}
		resp.ItemCount += it.Quantity
		resp.Items = append(resp.Items, line)
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Cart loaded.", resp)
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkoutSvc.Checkout(r.Context(), auth.IdentityFrom(r.Context()).UserID())
	if err != nil {
		helpers.WriteError(h.render, w, "Checkout", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusCreated, "Order placed.", other.NewOrderResponse(*order, h.money))
}
