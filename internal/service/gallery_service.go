package service

import (
	"context"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
)

type GalleryCategoryService = Resource[domain.GalleryCategory, domain.CreateGalleryCategory, domain.UpdateGalleryCategory]

func NewGalleryCategoryService(repo Repository[domain.GalleryCategory]) *GalleryCategoryService {
	return NewResource[domain.GalleryCategory, domain.CreateGalleryCategory, domain.UpdateGalleryCategory](repo)
}

type GalleryItemRepository interface {
	Repository[domain.GalleryItem]
	FindByCategory(ctx context.Context, categoryID int64) ([]*domain.GalleryItem, error)
}

// GalleryItemService requires an item's category to exist when the item is
// created or moved. Deleting a category later leaves its items untouched.
type GalleryItemService struct {
	*Resource[domain.GalleryItem, domain.CreateGalleryItem, domain.UpdateGalleryItem]
	items      GalleryItemRepository
	categories Repository[domain.GalleryCategory]
}

func NewGalleryItemService(items GalleryItemRepository, categories Repository[domain.GalleryCategory]) *GalleryItemService {
	s := &GalleryItemService{items: items, categories: categories}
	s.Resource = NewResource[domain.GalleryItem, domain.CreateGalleryItem, domain.UpdateGalleryItem](items,
		BeforeCreate[domain.GalleryItem](func(ctx context.Context, item *domain.GalleryItem) error {
			return s.requireCategory(ctx, item.CategoryID)
		}),
	)
	return s
}

func (s *GalleryItemService) Update(ctx context.Context, id int64, patch domain.UpdateGalleryItem) (*domain.GalleryItem, error) {
	if patch.CategoryID != nil {
		if err := s.requireCategory(ctx, *patch.CategoryID); err != nil {
			return nil, err
		}
	}
	return s.Resource.Update(ctx, id, patch)
}

func (s *GalleryItemService) FindByCategory(ctx context.Context, categoryID int64) ([]*domain.GalleryItem, error) {
	return s.items.FindByCategory(ctx, categoryID)
}

// SetImage points the item at a newly uploaded picture.
func (s *GalleryItemService) SetImage(ctx context.Context, id int64, url string) (*domain.GalleryItem, error) {
	return s.Resource.Update(ctx, id, domain.UpdateGalleryItem{Image: &url})
}

func (s *GalleryItemService) requireCategory(ctx context.Context, categoryID int64) error {
	_, err := s.categories.Get(ctx, categoryID)
	return err
}
