package domain

// Footer holds the contact block shown at the bottom of the site.
type Footer struct {
	Model
	PhoneNumber     string  `json:"phoneNumber" db:"phone_number"`
	Email           string  `json:"email" db:"email"`
	Address         string  `json:"address" db:"address"`
	WorkTime        string  `json:"workTime" db:"work_time"`
	CurrentLocation string  `json:"currentLocation" db:"current_location"`
	Instagram       *string `json:"instagram" db:"instagram"`
	Facebook        *string `json:"facebook" db:"facebook"`
	Twitter         *string `json:"twitter" db:"twitter"`
}

type CreateFooter struct {
	PhoneNumber     string  `json:"phoneNumber" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Address         string  `json:"address" validate:"required"`
	WorkTime        string  `json:"workTime" validate:"required"`
	CurrentLocation string  `json:"currentLocation" validate:"required"`
	Instagram       *string `json:"instagram"`
	Facebook        *string `json:"facebook"`
	Twitter         *string `json:"twitter"`
}

func (c CreateFooter) Build() *Footer {
	return &Footer{
		PhoneNumber:     c.PhoneNumber,
		Email:           c.Email,
		Address:         c.Address,
		WorkTime:        c.WorkTime,
		CurrentLocation: c.CurrentLocation,
		Instagram:       c.Instagram,
		Facebook:        c.Facebook,
		Twitter:         c.Twitter,
	}
}

type UpdateFooter struct {
	PhoneNumber     *string `json:"phoneNumber" validate:"omitempty,min=1"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Address         *string `json:"address" validate:"omitempty,min=1"`
	WorkTime        *string `json:"workTime" validate:"omitempty,min=1"`
	CurrentLocation *string `json:"currentLocation" validate:"omitempty,min=1"`
	Instagram       *string `json:"instagram"`
	Facebook        *string `json:"facebook"`
	Twitter         *string `json:"twitter"`
}

func (u UpdateFooter) Apply(f *Footer) {
	setIf(&f.PhoneNumber, u.PhoneNumber)
	setIf(&f.Email, u.Email)
	setIf(&f.Address, u.Address)
	setIf(&f.WorkTime, u.WorkTime)
	setIf(&f.CurrentLocation, u.CurrentLocation)
	setOptional(&f.Instagram, u.Instagram)
	setOptional(&f.Facebook, u.Facebook)
	setOptional(&f.Twitter, u.Twitter)
}
