package repository

import (
	"context"
	"database/sql"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
)

var cartSchema = Schema[domain.CartLine]{
	Resource: "cart item",
	Table:    "cart",
	Columns: []string{
		"session_id", "food_id", "food_name", "food_price", "quantity",
		"total_price", "special_instructions", "created_at", "updated_at",
	},
	Model: func(l *domain.CartLine) *domain.Model { return &l.Model },
	Fields: func(l *domain.CartLine) []any {
		return []any{
			l.SessionID, l.FoodID, l.FoodName, l.FoodPrice, l.Quantity,
			l.TotalPrice, l.SpecialInstructions, l.CreatedAt, l.UpdatedAt,
		}
	},
	Targets: func(l *domain.CartLine) []any {
		return []any{
			&l.ID, &l.SessionID, &l.FoodID, &l.FoodName, &l.FoodPrice, &l.Quantity,
			&l.TotalPrice, &l.SpecialInstructions, &l.CreatedAt, &l.UpdatedAt,
		}
	},
}

// CartRepository stores cart lines.
type CartRepository struct {
	*Store[domain.CartLine]
}

func NewCartRepository(db *sql.DB, opts ...StoreOption) *CartRepository {
	return &CartRepository{Store: NewStore(db, cartSchema, opts...)}
}

func (r *CartRepository) FindBySession(ctx context.Context, sessionID string) ([]*domain.CartLine, error) {
	return r.List(ctx, Eq("session_id", sessionID))
}

// ClearSession deletes every line of the session and returns how many were removed.
func (r *CartRepository) ClearSession(ctx context.Context, sessionID string) (int64, error) {
	return r.DeleteWhere(ctx, Eq("session_id", sessionID))
}
