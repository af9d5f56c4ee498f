package domain

// MenuItem is a dish on the cafe menu.
type MenuItem struct {
	Model
	Name        string  `json:"name" db:"name"`
	Price       string  `json:"price" db:"price"`
	Description string  `json:"description" db:"description"`
	Image       string  `json:"image" db:"image"`
	Rating      float64 `json:"rating" db:"rating"`
	IsAvailable bool    `json:"isAvailable" db:"is_available"`
	Category    string  `json:"category" db:"category"`
	Duration    int     `json:"duration" db:"duration"` // minutes
}

// CreateMenuItem is the request body for adding a menu item.
type CreateMenuItem struct {
	Name        string   `json:"name" validate:"required"`
	Price       string   `json:"price" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Image       string   `json:"image" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Duration    *int     `json:"duration" validate:"required,gte=0"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0"`
	IsAvailable *bool    `json:"isAvailable"`
}

// Build returns the menu item described by the command, with defaults applied.
func (c CreateMenuItem) Build() *MenuItem {
	item := &MenuItem{
		Name:        c.Name,
		Price:       c.Price,
		Description: c.Description,
		Image:       c.Image,
		Category:    c.Category,
		Duration:    *c.Duration,
		IsAvailable: true,
	}
	if c.Rating != nil {
		item.Rating = *c.Rating
	}
	if c.IsAvailable != nil {
		item.IsAvailable = *c.IsAvailable
	}
	return item
}

// UpdateMenuItem carries the fields of a partial menu item update.
type UpdateMenuItem struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Price       *string  `json:"price" validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Image       *string  `json:"image" validate:"omitempty,min=1"`
	Category    *string  `json:"category" validate:"omitempty,min=1"`
	Duration    *int     `json:"duration" validate:"omitempty,gte=0"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0"`
	IsAvailable *bool    `json:"isAvailable"`
}

// Apply merges the supplied fields onto item.
func (u UpdateMenuItem) Apply(item *MenuItem) {
	setIf(&item.Name, u.Name)
	setIf(&item.Price, u.Price)
	setIf(&item.Description, u.Description)
	setIf(&item.Image, u.Image)
	setIf(&item.Category, u.Category)
	setIf(&item.Duration, u.Duration)
	setIf(&item.Rating, u.Rating)
	setIf(&item.IsAvailable, u.IsAvailable)
}

// setIf copies *src into dst when src was supplied.
func setIf[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}

// setOptional replaces an optional field when src was supplied.
func setOptional[V any](dst **V, src *V) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
