package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
	"github.com/KianJanloo/burger-cafe-back/internal/media"
	"github.com/KianJanloo/burger-cafe-back/internal/middleware"
	"github.com/KianJanloo/burger-cafe-back/internal/service"
)

type GalleryHandler struct {
	categories resourceHandler[domain.GalleryCategory, domain.CreateGalleryCategory, domain.UpdateGalleryCategory]
	items      resourceHandler[domain.GalleryItem, domain.CreateGalleryItem, domain.UpdateGalleryItem]
	itemSvc    *service.GalleryItemService
	uploader   imageUploader
	logger     *zap.Logger
}

func NewGalleryHandler(categories *service.GalleryCategoryService, items *service.GalleryItemService, disk media.Disk, logger *zap.Logger) *GalleryHandler {
	return &GalleryHandler{
		categories: newResourceHandler[domain.GalleryCategory, domain.CreateGalleryCategory, domain.UpdateGalleryCategory](categories, "gallery category", logger),
		items:      newResourceHandler[domain.GalleryItem, domain.CreateGalleryItem, domain.UpdateGalleryItem](items, "gallery item", logger),
		itemSvc:    items,
		uploader:   imageUploader{disk: disk, logger: logger},
		logger:     logger,
	}
}

func (h *GalleryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/gallery", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) { h.categories.routes(r, nil) })
		r.Route("/items", func(r chi.Router) {
			h.items.routes(r, nil)
			r.Get("/category/{categoryId}", h.ItemsByCategory)
			r.Post("/{id}/image", h.UploadImage)
		})
	})
}

// ItemsByCategory handles GET /gallery/items/category/{categoryId}
func (h *GalleryHandler) ItemsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := parseID(w, r, "categoryId")
	if !ok {
		return
	}
	items, err := h.itemSvc.FindByCategory(r.Context(), categoryID)
	respondList(w, h.logger, items, err, "gallery item")
}

// UploadImage handles POST /gallery/items/{id}/image
func (h *GalleryHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}
	if _, err := h.itemSvc.Get(r.Context(), id); err != nil {
		respondError(w, h.logger, err, "failed to get gallery item")
		return
	}

	url, ok := h.uploader.save(w, r, "gallery")
	if !ok {
		return
	}

	item, err := h.itemSvc.SetImage(r.Context(), id, url)
	if err != nil {
		respondError(w, h.logger, err, "failed to update gallery item image")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, item)
}
