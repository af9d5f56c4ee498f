package repository

import (
	"context"
	"database/sql"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
)

var galleryCategorySchema = Schema[domain.GalleryCategory]{
	Resource: "gallery category",
	Table:    "gallery_categories",
	Columns:  []string{"name", "description", "created_at", "updated_at"},
	Model:    func(c *domain.GalleryCategory) *domain.Model { return &c.Model },
	Fields: func(c *domain.GalleryCategory) []any {
		return []any{c.Name, c.Description, c.CreatedAt, c.UpdatedAt}
	},
	Targets: func(c *domain.GalleryCategory) []any {
		return []any{&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt}
	},
}

func NewGalleryCategoryRepository(db *sql.DB, opts ...StoreOption) *Store[domain.GalleryCategory] {
	return NewStore(db, galleryCategorySchema, opts...)
}

var galleryItemSchema = Schema[domain.GalleryItem]{
	Resource: "gallery item",
	Table:    "gallery_items",
	Columns:  []string{"title", "description", "image", "category_id", "created_at", "updated_at"},
	Model:    func(i *domain.GalleryItem) *domain.Model { return &i.Model },
	Fields: func(i *domain.GalleryItem) []any {
		return []any{i.Title, i.Description, i.Image, i.CategoryID, i.CreatedAt, i.UpdatedAt}
	},
	Targets: func(i *domain.GalleryItem) []any {
		return []any{&i.ID, &i.Title, &i.Description, &i.Image, &i.CategoryID, &i.CreatedAt, &i.UpdatedAt}
	},
}

// GalleryItemRepository stores gallery items.
type GalleryItemRepository struct {
	*Store[domain.GalleryItem]
}

func NewGalleryItemRepository(db *sql.DB, opts ...StoreOption) *GalleryItemRepository {
	return &GalleryItemRepository{Store: NewStore(db, galleryItemSchema, opts...)}
}

func (r *GalleryItemRepository) FindByCategory(ctx context.Context, categoryID int64) ([]*domain.GalleryItem, error) {
	return r.List(ctx, Eq("category_id", categoryID))
}
