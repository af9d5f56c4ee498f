package domain

// Reservation is a table booking.
type Reservation struct {
	Model
	FullName       string            `json:"fullName" db:"full_name"`
	PhoneNumber    string            `json:"phoneNumber" db:"phone_number"`
	Email          *string           `json:"email" db:"email"`
	Date           Date              `json:"date" db:"date"`
	Time           string            `json:"time" db:"time"` // HH:MM
	CustomerCount  int               `json:"customerCount" db:"customer_count"`
	SpecialRequest *string           `json:"specialRequest" db:"special_request"`
	Status         ReservationStatus `json:"status" db:"status"`
}

type CreateReservation struct {
	FullName       string  `json:"fullName" validate:"required"`
	PhoneNumber    string  `json:"phoneNumber" validate:"required"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Date           Date    `json:"date" validate:"required"`
	Time           string  `json:"time" validate:"required,datetime=15:04"`
	CustomerCount  *int    `json:"customerCount" validate:"required,gte=1"`
	SpecialRequest *string `json:"specialRequest"`
}

func (c CreateReservation) Build() *Reservation {
	return &Reservation{
		FullName:       c.FullName,
		PhoneNumber:    c.PhoneNumber,
		Email:          c.Email,
		Date:           c.Date,
		Time:           c.Time,
		CustomerCount:  *c.CustomerCount,
		SpecialRequest: c.SpecialRequest,
		Status:         ReservationPending,
	}
}

type UpdateReservation struct {
	FullName       *string            `json:"fullName" validate:"omitempty,min=1"`
	PhoneNumber    *string            `json:"phoneNumber" validate:"omitempty,min=1"`
	Email          *string            `json:"email" validate:"omitempty,email"`
	Date           *Date              `json:"date"`
	Time           *string            `json:"time" validate:"omitempty,datetime=15:04"`
	CustomerCount  *int               `json:"customerCount" validate:"omitempty,gte=1"`
	SpecialRequest *string            `json:"specialRequest"`
	Status         *ReservationStatus `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

func (u UpdateReservation) Apply(r *Reservation) {
	setIf(&r.FullName, u.FullName)
	setIf(&r.PhoneNumber, u.PhoneNumber)
	setOptional(&r.Email, u.Email)
	setIf(&r.Date, u.Date)
	setIf(&r.Time, u.Time)
	setIf(&r.CustomerCount, u.CustomerCount)
	setOptional(&r.SpecialRequest, u.SpecialRequest)
	setIf(&r.Status, u.Status)
}
