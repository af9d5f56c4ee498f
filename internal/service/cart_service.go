package service

import (
	"context"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
	"github.com/shopspring/decimal"
)

type CartRepository interface {
	Repository[domain.CartLine]
	FindBySession(ctx context.Context, sessionID string) ([]*domain.CartLine, error)
	ClearSession(ctx context.Context, sessionID string) (int64, error)
}

// CartService keeps every line's TotalPrice equal to FoodPrice × Quantity.
type CartService struct {
	*Resource[domain.CartLine, domain.CreateCartLine, domain.UpdateCartLine]
	repo CartRepository
}

func NewCartService(repo CartRepository) *CartService {
	return &CartService{
		Resource: NewResource[domain.CartLine, domain.CreateCartLine, domain.UpdateCartLine](repo,
			BeforeSave[domain.CartLine](func(_ context.Context, line *domain.CartLine) error {
				line.Recalculate()
				return nil
			}),
		),
		repo: repo,
	}
}

func (s *CartService) FindBySession(ctx context.Context, sessionID string) ([]*domain.CartLine, error) {
	return s.repo.FindBySession(ctx, sessionID)
}

// Total sums TotalPrice over the session's lines. An unknown session totals zero.
func (s *CartService) Total(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	lines, err := s.repo.FindBySession(ctx, sessionID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.TotalPrice)
	}
	return total, nil
}

func (s *CartService) SetQuantity(ctx context.Context, id int64, quantity int) (*domain.CartLine, error) {
	return s.Update(ctx, id, domain.UpdateCartLine{Quantity: &quantity})
}

// ClearSession empties the session's cart and reports how many lines went.
func (s *CartService) ClearSession(ctx context.Context, sessionID string) (int64, error) {
	return s.repo.ClearSession(ctx, sessionID)
}
