package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/Rakhulsr/go-marketplace/app/auth"
	"github.com/Rakhulsr/go-marketplace/app/helpers"
	"github.com/Rakhulsr/go-marketplace/app/models/other"
	"github.com/Rakhulsr/go-marketplace/app/services"
	"github.com/Rakhulsr/go-marketplace/app/utils/format"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	render   *render.Render
	orderSvc *services.OrderService
	money    format.Money
}

func NewOrderHandler(r *render.Render, orderSvc *services.OrderService, money format.Money) *OrderHandler {
	return &OrderHandler{render: r, orderSvc: orderSvc, money: money}
}

func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.ListMine(r.Context(), auth.IdentityFrom(r.Context()).UserID())
	if err != nil {
		helpers.WriteError(h.render, w, "MyOrders", err)
		return
	}

	resp := make([]other.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, other.NewOrderResponse(o, h.money))
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Orders loaded.", resp)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r)
	if err != nil {
		helpers.WriteError(h.render, w, "GetOrder", err)
		return
	}

	order, err := h.orderSvc.Get(r.Context(), auth.IdentityFrom(r.Context()).UserID(), id)
	if err != nil {
		helpers.WriteError(h.render, w, "GetOrder", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Order loaded.", other.NewOrderResponse(*order, h.money))
}

func (h *OrderHandler) PayOrder(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r)
	if err != nil {
		helpers.WriteError(h.render, w, "PayOrder", err)
		return
	}

	payment, err := h.orderSvc.Pay(r.Context(), auth.IdentityFrom(r.Context()).UserID(), id)
	if err != nil {
		helpers.WriteError(h.render, w, "PayOrder", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Payment page ready.", payment)
}

// PaymentNotification receives Midtrans HTTP notifications. It is not behind
// the bearer gate; the payload signature authenticates it.
func (h *OrderHandler) PaymentNotification(w http.ResponseWriter, r *http.Request) {
	var n services.PaymentNotification
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&n); err != nil {
		log.Printf("PaymentNotification: failed to decode body: %v", err)
		helpers.JSONError(h.render, w, http.StatusBadRequest, "Invalid notification payload.", nil)
		return
	}

	order, err := h.orderSvc.HandleNotification(r.Context(), n)
	if err != nil {
		helpers.WriteError(h.render, w, "PaymentNotification", err)
		return
	}
	helpers.JSONSuccess(h.render, w, http.StatusOK, "Notification processed.", map[string]interface{}{
		"orderCode": order.OrderCode,
		"status":    order.Status,
	})
}
