package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
	"github.com/KianJanloo/burger-cafe-back/internal/middleware"
	"github.com/KianJanloo/burger-cafe-back/internal/service"
)

type CartHandler struct {
	resourceHandler[domain.CartLine, domain.CreateCartLine, domain.UpdateCartLine]
	cart *service.CartService
}

type ClearCartResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
	Removed   int64  `json:"removed"`
}

func NewCartHandler(cart *service.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		resourceHandler: newResourceHandler[domain.CartLine, domain.CreateCartLine, domain.UpdateCartLine](cart, "cart item", logger),
		cart:            cart,
	}
}

func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		h.routes(r, h.List)
		r.Get("/total", h.Total)
		r.Patch("/{id}/quantity", h.SetQuantity)
		r.Delete("/session/{sessionId}", h.ClearSession)
	})
}

// List handles GET /cart?sessionId=
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}
	lines, err := h.cart.FindBySession(r.Context(), sessionID)
	respondList(w, h.logger, lines, err, h.name)
}

// Total handles GET /cart/total?sessionId=
func (h *CartHandler) Total(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}
	total, err := h.cart.Total(r.Context(), sessionID)
	if err != nil {
		respondError(w, h.logger, err, "failed to calculate cart total")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, domain.CartTotal{SessionID: sessionID, Total: total})
}

// SetQuantity handles PATCH /cart/{id}/quantity
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}
	var req domain.SetQuantity
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	line, err := h.cart.SetQuantity(r.Context(), id, *req.Quantity)
	if err != nil {
		respondError(w, h.logger, err, "failed to update cart quantity")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, line)
}

// ClearSession handles DELETE /cart/session/{sessionId}
func (h *CartHandler) ClearSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	removed, err := h.cart.ClearSession(r.Context(), sessionID)
	if err != nil {
		respondError(w, h.logger, err, "failed to clear cart")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, ClearCartResponse{
		Message:   "Cart cleared successfully",
		SessionID: sessionID,
		Removed:   removed,
	})
}

func requireSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "sessionId is required")
		return "", false
	}
	return sessionID, true
}
