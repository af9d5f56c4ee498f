package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Order is a customer order. OrderNumber is assigned when the order is placed.
type Order struct {
	Model
	OrderNumber           string          `json:"orderNumber" db:"order_number"`
	CustomerName          string          `json:"customerName" db:"customer_name"`
	CustomerPhone         string          `json:"customerPhone" db:"customer_phone"`
	CustomerEmail         *string         `json:"customerEmail" db:"customer_email"`
	OrderType             OrderType       `json:"orderType" db:"order_type"`
	Status                OrderStatus     `json:"status" db:"status"`
	Items                 OrderItems      `json:"items" db:"items"`
	Subtotal              decimal.Decimal `json:"subtotal" db:"subtotal"`
	DeliveryFee           decimal.Decimal `json:"deliveryFee" db:"delivery_fee"`
	Tax                   decimal.Decimal `json:"tax" db:"tax"`
	Total                 decimal.Decimal `json:"total" db:"total"`
	SpecialInstructions   *string         `json:"specialInstructions" db:"special_instructions"`
	DeliveryAddress       *string         `json:"deliveryAddress" db:"delivery_address"`
	EstimatedDeliveryTime *time.Time      `json:"estimatedDeliveryTime" db:"estimated_delivery_time"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	MenuItemID          int64           `json:"menuItemId" validate:"required,gte=1"`
	Name                string          `json:"name" validate:"required"`
	Price               decimal.Decimal `json:"price" validate:"gt=0"`
	Quantity            int             `json:"quantity" validate:"required,gte=1"`
	SpecialInstructions *string         `json:"specialInstructions,omitempty"`
}

// OrderItems is stored as a JSONB array.
type OrderItems []OrderItem

// Value implements driver.Valuer.
func (items OrderItems) Value() (driver.Value, error) {
	if items == nil {
		items = OrderItems{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order items: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (items *OrderItems) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*items = OrderItems{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into OrderItems", src)
	}
	if err := json.Unmarshal(data, items); err != nil {
		return fmt.Errorf("failed to decode order items: %w", err)
	}
	return nil
}

type CreateOrder struct {
	CustomerName          string           `json:"customerName" validate:"required"`
	CustomerPhone         string           `json:"customerPhone" validate:"required"`
	CustomerEmail         *string          `json:"customerEmail" validate:"omitempty,email"`
	OrderType             OrderType        `json:"orderType" validate:"required,oneof=dine_in takeaway delivery"`
	Items                 []OrderItem      `json:"items" validate:"required,min=1,dive"`
	Subtotal              *decimal.Decimal `json:"subtotal" validate:"required,gte=0"`
	DeliveryFee           *decimal.Decimal `json:"deliveryFee" validate:"omitempty,gte=0"`
	Tax                   *decimal.Decimal `json:"tax" validate:"omitempty,gte=0"`
	Total                 *decimal.Decimal `json:"total" validate:"required,gte=0"`
	SpecialInstructions   *string          `json:"specialInstructions"`
	DeliveryAddress       *string          `json:"deliveryAddress"`
	EstimatedDeliveryTime *time.Time       `json:"estimatedDeliveryTime"`
}

// Build returns a pending order. The order number is left for the caller.
func (c CreateOrder) Build() *Order {
	order := &Order{
		CustomerName:          c.CustomerName,
		CustomerPhone:         c.CustomerPhone,
		CustomerEmail:         c.CustomerEmail,
		OrderType:             c.OrderType,
		Status:                OrderPending,
		Items:                 OrderItems(c.Items),
		Subtotal:              *c.Subtotal,
		Total:                 *c.Total,
		SpecialInstructions:   c.SpecialInstructions,
		DeliveryAddress:       c.DeliveryAddress,
		EstimatedDeliveryTime: c.EstimatedDeliveryTime,
	}
	setIf(&order.DeliveryFee, c.DeliveryFee)
	setIf(&order.Tax, c.Tax)
	return order
}

type UpdateOrder struct {
	CustomerName          *string          `json:"customerName" validate:"omitempty,min=1"`
	CustomerPhone         *string          `json:"customerPhone" validate:"omitempty,min=1"`
	CustomerEmail         *string          `json:"customerEmail" validate:"omitempty,email"`
	OrderType             *OrderType       `json:"orderType" validate:"omitempty,oneof=dine_in takeaway delivery"`
	Status                *OrderStatus     `json:"status" validate:"omitempty,oneof=pending confirmed preparing ready delivered cancelled"`
	Items                 []OrderItem      `json:"items" validate:"omitempty,min=1,dive"`
	Subtotal              *decimal.Decimal `json:"subtotal" validate:"omitempty,gte=0"`
	DeliveryFee           *decimal.Decimal `json:"deliveryFee" validate:"omitempty,gte=0"`
	Tax                   *decimal.Decimal `json:"tax" validate:"omitempty,gte=0"`
	Total                 *decimal.Decimal `json:"total" validate:"omitempty,gte=0"`
	SpecialInstructions   *string          `json:"specialInstructions"`
	DeliveryAddress       *string          `json:"deliveryAddress"`
	EstimatedDeliveryTime *time.Time       `json:"estimatedDeliveryTime"`
}

// Apply merges the supplied fields. The order number never changes.
func (u UpdateOrder) Apply(o *Order) {
	setIf(&o.CustomerName, u.CustomerName)
	setIf(&o.CustomerPhone, u.CustomerPhone)
	setOptional(&o.CustomerEmail, u.CustomerEmail)
	setIf(&o.OrderType, u.OrderType)
	setIf(&o.Status, u.Status)
	if u.Items != nil {
		o.Items = OrderItems(u.Items)
	}
	setIf(&o.Subtotal, u.Subtotal)
	setIf(&o.DeliveryFee, u.DeliveryFee)
	setIf(&o.Tax, u.Tax)
	setIf(&o.Total, u.Total)
	setOptional(&o.SpecialInstructions, u.SpecialInstructions)
	setOptional(&o.DeliveryAddress, u.DeliveryAddress)
	setOptional(&o.EstimatedDeliveryTime, u.EstimatedDeliveryTime)
}

// SetOrderStatus is the body of PATCH /orders/{id}/status.
type SetOrderStatus struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending confirmed preparing ready delivered cancelled"`
}

// SetReservationStatus is the body of PATCH /reservation/{id}/status.
type SetReservationStatus struct {
	Status ReservationStatus `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

// SetContactStatus is the body of PATCH /contact-us/{id}/status.
type SetContactStatus struct {
	Status ContactStatus `json:"status" validate:"required,oneof=pending in_progress resolved closed"`
}
