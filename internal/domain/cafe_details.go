package domain

import "github.com/shopspring/decimal"

// CafeDetails holds the headline numbers shown on the landing page.
type CafeDetails struct {
	Model
	KindOfBurgers int             `json:"kindOfBurgers" db:"kind_of_burgers"`
	Experience    int             `json:"experience" db:"experience"` // years
	Rate          decimal.Decimal `json:"rate" db:"rate"`
	Customers     int             `json:"customers" db:"customers"`
}

type CreateCafeDetails struct {
	KindOfBurgers *int             `json:"kindOfBurgers" validate:"required,gte=0"`
	Experience    *int             `json:"experience" validate:"required,gte=0"`
	Rate          *decimal.Decimal `json:"rate" validate:"required,gte=0,lte=9.99"`
	Customers     *int             `json:"customers" validate:"required,gte=0"`
}

func (c CreateCafeDetails) Build() *CafeDetails {
	return &CafeDetails{
		KindOfBurgers: *c.KindOfBurgers,
		Experience:    *c.Experience,
		Rate:          c.Rate.Round(2),
		Customers:     *c.Customers,
	}
}

type UpdateCafeDetails struct {
	KindOfBurgers *int             `json:"kindOfBurgers" validate:"omitempty,gte=0"`
	Experience    *int             `json:"experience" validate:"omitempty,gte=0"`
	Rate          *decimal.Decimal `json:"rate" validate:"omitempty,gte=0,lte=9.99"`
	Customers     *int             `json:"customers" validate:"omitempty,gte=0"`
}

func (u UpdateCafeDetails) Apply(d *CafeDetails) {
	setIf(&d.KindOfBurgers, u.KindOfBurgers)
	setIf(&d.Experience, u.Experience)
	if u.Rate != nil {
		d.Rate = u.Rate.Round(2)
	}
	setIf(&d.Customers, u.Customers)
}
