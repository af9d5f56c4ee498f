package transport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
	"github.com/KianJanloo/burger-cafe-back/internal/media"
	"github.com/KianJanloo/burger-cafe-back/internal/middleware"
	"github.com/KianJanloo/burger-cafe-back/internal/repository"
	"github.com/KianJanloo/burger-cafe-back/internal/service"
)

type MenuHandler struct {
	resourceHandler[domain.MenuItem, domain.CreateMenuItem, domain.UpdateMenuItem]
	menu     *service.MenuService
	uploader imageUploader
}

func NewMenuHandler(menu *service.MenuService, disk media.Disk, logger *zap.Logger) *MenuHandler {
	return &MenuHandler{
		resourceHandler: newResourceHandler[domain.MenuItem, domain.CreateMenuItem, domain.UpdateMenuItem](menu, "menu item", logger),
		menu:            menu,
		uploader:        imageUploader{disk: disk, logger: logger},
	}
}

func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Route("/menu", func(r chi.Router) {
		h.routes(r, h.List)
		r.Post("/{id}/image", h.UploadImage)
	})
}

// List handles GET /menu?category=&available=
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter repository.MenuFilter
	if category := r.URL.Query().Get("category"); category != "" {
		filter.Category = &category
	}
	if raw := r.URL.Query().Get("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, "available must be true or false")
			return
		}
		filter.Available = &available
	}

	items, err := h.menu.Find(r.Context(), filter)
	respondList(w, h.logger, items, err, h.name)
}

// UploadImage handles POST /menu/{id}/image
func (h *MenuHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}
	if _, err := h.menu.Get(r.Context(), id); err != nil {
		respondError(w, h.logger, err, "failed to get menu item")
		return
	}

	url, ok := h.uploader.save(w, r, "menu")
	if !ok {
		return
	}

	item, err := h.menu.SetImage(r.Context(), id, url)
	if err != nil {
		respondError(w, h.logger, err, "failed to update menu item image")
		return
	}
	h.logger.Info("Menu item image uploaded", zap.Int64("id", id), zap.String("url", url))
	middleware.RespondWithJSON(w, http.StatusOK, item)
}
