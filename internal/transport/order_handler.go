package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
	"github.com/KianJanloo/burger-cafe-back/internal/middleware"
	"github.com/KianJanloo/burger-cafe-back/internal/repository"
	"github.com/KianJanloo/burger-cafe-back/internal/service"
)

type OrderHandler struct {
	resourceHandler[domain.Order, domain.CreateOrder, domain.UpdateOrder]
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		resourceHandler: newResourceHandler[domain.Order, domain.CreateOrder, domain.UpdateOrder](orders, "order", logger),
		orders:          orders,
	}
}

func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		h.routes(r, h.List)
		r.Get("/order-number/{orderNumber}", h.GetByOrderNumber)
		r.Patch("/{id}/status", h.SetStatus)
		r.Get("/{id}/qrcode", h.QRCode)
	})
}

// List handles GET /orders?status=&orderType=
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter repository.OrderFilter
	query := r.URL.Query()

	if raw := query.Get("status"); raw != "" {
		status := domain.OrderStatus(raw)
		if !status.Valid() {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid status: "+raw)
			return
		}
		filter.Status = &status
	}
	if raw := query.Get("orderType"); raw != "" {
		orderType := domain.OrderType(raw)
		if !orderType.Valid() {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid orderType: "+raw)
			return
		}
		filter.OrderType = &orderType
	}

	orders, err := h.orders.Find(r.Context(), filter)
	respondList(w, h.logger, orders, err, h.name)
}

// GetByOrderNumber handles GET /orders/order-number/{orderNumber}
func (h *OrderHandler) GetByOrderNumber(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.FindByOrderNumber(r.Context(), chi.URLParam(r, "orderNumber"))
	if err != nil {
		respondError(w, h.logger, err, "failed to get order")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, order)
}

// SetStatus handles PATCH /orders/{id}/status
func (h *OrderHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}
	var req domain.SetOrderStatus
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	order, err := h.orders.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		respondError(w, h.logger, err, "failed to update order status")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, order)
}

// QRCode handles GET /orders/{id}/qrcode
func (h *OrderHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	png, err := h.orders.QRCode(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err, "failed to generate order qr code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
