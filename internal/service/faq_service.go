package service

import (
	"context"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
)

type FAQRepository interface {
	Repository[domain.FAQ]
	ListActive(ctx context.Context) ([]*domain.FAQ, error)
}

type FAQService struct {
	*Resource[domain.FAQ, domain.CreateFAQ, domain.UpdateFAQ]
	repo FAQRepository
}

func NewFAQService(repo FAQRepository) *FAQService {
	return &FAQService{
		Resource: NewResource[domain.FAQ, domain.CreateFAQ, domain.UpdateFAQ](repo),
		repo:     repo,
	}
}

// ListActive returns the public FAQ, by display order.
func (s *FAQService) ListActive(ctx context.Context) ([]*domain.FAQ, error) {
	return s.repo.ListActive(ctx)
}
