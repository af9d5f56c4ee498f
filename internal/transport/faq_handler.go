package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
	"github.com/KianJanloo/burger-cafe-back/internal/service"
)

type FAQHandler struct {
	resourceHandler[domain.FAQ, domain.CreateFAQ, domain.UpdateFAQ]
	faqs *service.FAQService
}

func NewFAQHandler(faqs *service.FAQService, logger *zap.Logger) *FAQHandler {
	return &FAQHandler{
		resourceHandler: newResourceHandler[domain.FAQ, domain.CreateFAQ, domain.UpdateFAQ](faqs, "FAQ", logger),
		faqs:            faqs,
	}
}

// RegisterRoutes serves active entries at GET /faq and every entry at
// GET /faq/admin.
func (h *FAQHandler) RegisterRoutes(r chi.Router) {
	r.Route("/faq", func(r chi.Router) {
		h.routes(r, h.ListActive)
		r.Get("/admin", h.list)
	})
}

func (h *FAQHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.faqs.ListActive(r.Context())
	respondList(w, h.logger, faqs, err, h.name)
}
