package repository

import (
	"context"
	"database/sql"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
)

var menuSchema = Schema[domain.MenuItem]{
	Resource: "menu item",
	Table:    "food",
	Columns: []string{
		"name", "price", "description", "image", "rating",
		"is_available", "category", "duration", "created_at", "updated_at",
	},
	Model: func(m *domain.MenuItem) *domain.Model { return &m.Model },
	Fields: func(m *domain.MenuItem) []any {
		return []any{
			m.Name, m.Price, m.Description, m.Image, m.Rating,
			m.IsAvailable, m.Category, m.Duration, m.CreatedAt, m.UpdatedAt,
		}
	},
	Targets: func(m *domain.MenuItem) []any {
		return []any{
			&m.ID, &m.Name, &m.Price, &m.Description, &m.Image, &m.Rating,
			&m.IsAvailable, &m.Category, &m.Duration, &m.CreatedAt, &m.UpdatedAt,
		}
	},
}

// MenuFilter narrows a menu listing. Nil fields do not filter.
type MenuFilter struct {
	Category  *string
	Available *bool
}

// MenuRepository stores menu items.
type MenuRepository struct {
	*Store[domain.MenuItem]
}

func NewMenuRepository(db *sql.DB, opts ...StoreOption) *MenuRepository {
	return &MenuRepository{Store: NewStore(db, menuSchema, opts...)}
}

// Find lists the menu items matching every set field of the filter.
func (r *MenuRepository) Find(ctx context.Context, f MenuFilter) ([]*domain.MenuItem, error) {
	var conds []Condition
	if f.Category != nil {
		conds = append(conds, Eq("category", *f.Category))
	}
	if f.Available != nil {
		conds = append(conds, Eq("is_available", *f.Available))
	}
	return r.List(ctx, conds...)
}
