package service

import (
	"context"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
	"github.com/KianJanloo/burger-cafe-back/internal/repository"
)

type MenuRepository interface {
	Repository[domain.MenuItem]
	Find(ctx context.Context, f repository.MenuFilter) ([]*domain.MenuItem, error)
}

type MenuService struct {
	*Resource[domain.MenuItem, domain.CreateMenuItem, domain.UpdateMenuItem]
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{
		Resource: NewResource[domain.MenuItem, domain.CreateMenuItem, domain.UpdateMenuItem](repo),
		repo:     repo,
	}
}

// Find lists menu items by category and availability.
func (s *MenuService) Find(ctx context.Context, f repository.MenuFilter) ([]*domain.MenuItem, error) {
	return s.repo.Find(ctx, f)
}

// SetImage points the item at a newly uploaded picture.
func (s *MenuService) SetImage(ctx context.Context, id int64, url string) (*domain.MenuItem, error) {
	return s.Update(ctx, id, domain.UpdateMenuItem{Image: &url})
}
