package domain

import "github.com/shopspring/decimal"

// CartLine is one food entry in a visitor's cart. Carts are keyed by an
// opaque session id chosen by the client.
type CartLine struct {
	Model
	SessionID           string          `json:"sessionId" db:"session_id"`
	FoodID              int64           `json:"foodId" db:"food_id"`
	FoodName            string          `json:"foodName" db:"food_name"`
	FoodPrice           decimal.Decimal `json:"foodPrice" db:"food_price"`
	Quantity            int             `json:"quantity" db:"quantity"`
	TotalPrice          decimal.Decimal `json:"totalPrice" db:"total_price"`
	SpecialInstructions *string         `json:"specialInstructions" db:"special_instructions"`
}

// Recalculate sets TotalPrice to FoodPrice × Quantity.
func (l *CartLine) Recalculate() {
	l.TotalPrice = l.FoodPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type CreateCartLine struct {
	SessionID           string           `json:"sessionId" validate:"required"`
	FoodID              *int64           `json:"foodId" validate:"required,gte=1"`
	FoodName            string           `json:"foodName" validate:"required"`
	FoodPrice           *decimal.Decimal `json:"foodPrice" validate:"required,gte=0"`
	Quantity            *int             `json:"quantity" validate:"required,gte=1"`
	SpecialInstructions *string          `json:"specialInstructions"`
}

func (c CreateCartLine) Build() *CartLine {
	return &CartLine{
		SessionID:           c.SessionID,
		FoodID:              *c.FoodID,
		FoodName:            c.FoodName,
		FoodPrice:           *c.FoodPrice,
		Quantity:            *c.Quantity,
		SpecialInstructions: c.SpecialInstructions,
	}
}

type UpdateCartLine struct {
	SessionID           *string          `json:"sessionId" validate:"omitempty,min=1"`
	FoodID              *int64           `json:"foodId" validate:"omitempty,gte=1"`
	FoodName            *string          `json:"foodName" validate:"omitempty,min=1"`
	FoodPrice           *decimal.Decimal `json:"foodPrice" validate:"omitempty,gte=0"`
	Quantity            *int             `json:"quantity" validate:"omitempty,gte=1"`
	SpecialInstructions *string          `json:"specialInstructions"`
}

func (u UpdateCartLine) Apply(l *CartLine) {
	setIf(&l.SessionID, u.SessionID)
	setIf(&l.FoodID, u.FoodID)
	setIf(&l.FoodName, u.FoodName)
	setIf(&l.FoodPrice, u.FoodPrice)
	setIf(&l.Quantity, u.Quantity)
	setOptional(&l.SpecialInstructions, u.SpecialInstructions)
}

// SetQuantity is the body of PATCH /cart/{id}/quantity.
type SetQuantity struct {
	Quantity *int `json:"quantity" validate:"required,gte=1"`
}

// CartTotal is the sum of a session's cart lines.
type CartTotal struct {
	SessionID string          `json:"sessionId"`
	Total     decimal.Decimal `json:"total"`
}
