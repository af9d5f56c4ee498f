package repository

import (
	"context"
	"database/sql"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
)

var faqSchema = Schema[domain.FAQ]{
	Resource: "faq",
	Table:    "faq",
	Columns:  []string{"question", "answer", "sort_order", "is_active", "created_at", "updated_at"},
	OrderBy:  "sort_order ASC, id ASC",
	Model:    func(f *domain.FAQ) *domain.Model { return &f.Model },
	Fields: func(f *domain.FAQ) []any {
		return []any{f.Question, f.Answer, f.Order, f.IsActive, f.CreatedAt, f.UpdatedAt}
	},
	Targets: func(f *domain.FAQ) []any {
		return []any{&f.ID, &f.Question, &f.Answer, &f.Order, &f.IsActive, &f.CreatedAt, &f.UpdatedAt}
	},
}

// FAQRepository stores FAQ entries, listed by display order.
type FAQRepository struct {
	*Store[domain.FAQ]
}

func NewFAQRepository(db *sql.DB, opts ...StoreOption) *FAQRepository {
	return &FAQRepository{Store: NewStore(db, faqSchema, opts...)}
}

func (r *FAQRepository) ListActive(ctx context.Context) ([]*domain.FAQ, error) {
	return r.List(ctx, Eq("is_active", true))
}
