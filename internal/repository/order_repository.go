package repository

import (
	"context"
	"database/sql"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
)

var orderSchema = Schema[domain.Order]{
	Resource: "order",
	Table:    "orders",
	Columns: []string{
		"order_number", "customer_name", "customer_phone", "customer_email", "order_type", "status",
		"items", "subtotal", "delivery_fee", "tax", "total",
		"special_instructions", "delivery_address", "estimated_delivery_time", "created_at", "updated_at",
	},
	OrderBy: "created_at DESC, id DESC",
	Model:   func(o *domain.Order) *domain.Model { return &o.Model },
	Fields: func(o *domain.Order) []any {
		return []any{
			o.OrderNumber, o.CustomerName, o.CustomerPhone, o.CustomerEmail, string(o.OrderType), string(o.Status),
			o.Items, o.Subtotal, o.DeliveryFee, o.Tax, o.Total,
			o.SpecialInstructions, o.DeliveryAddress, o.EstimatedDeliveryTime, o.CreatedAt, o.UpdatedAt,
		}
	},
	Targets: func(o *domain.Order) []any {
		return []any{
			&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerPhone, &o.CustomerEmail, &o.OrderType, &o.Status,
			&o.Items, &o.Subtotal, &o.DeliveryFee, &o.Tax, &o.Total,
			&o.SpecialInstructions, &o.DeliveryAddress, &o.EstimatedDeliveryTime, &o.CreatedAt, &o.UpdatedAt,
		}
	},
}

// OrderFilter narrows an order listing. Nil fields do not filter.
type OrderFilter struct {
	Status    *domain.OrderStatus
	OrderType *domain.OrderType
}

// OrderRepository stores orders, newest first.
type OrderRepository struct {
	*Store[domain.Order]
}

func NewOrderRepository(db *sql.DB, opts ...StoreOption) *OrderRepository {
	return &OrderRepository{Store: NewStore(db, orderSchema, opts...)}
}

func (r *OrderRepository) Find(ctx context.Context, f OrderFilter) ([]*domain.Order, error) {
	var conds []Condition
	if f.Status != nil {
		conds = append(conds, Eq("status", string(*f.Status)))
	}
	if f.OrderType != nil {
		conds = append(conds, Eq("order_type", string(*f.OrderType)))
	}
	return r.List(ctx, conds...)
}

func (r *OrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	return r.FindOne(ctx, Eq("order_number", orderNumber))
}
