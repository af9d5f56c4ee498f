package domain

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	Model
	FullName    string        `json:"fullName" db:"full_name"`
	Email       string        `json:"email" db:"email"`
	PhoneNumber string        `json:"phoneNumber" db:"phone_number"`
	Subject     string        `json:"subject" db:"subject"`
	Message     string        `json:"message" db:"message"`
	Status      ContactStatus `json:"status" db:"status"`
}

type CreateContactMessage struct {
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Message     string `json:"message" validate:"required"`
}

func (c CreateContactMessage) Build() *ContactMessage {
	return &ContactMessage{
		FullName:    c.FullName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Subject:     c.Subject,
		Message:     c.Message,
		Status:      ContactPending,
	}
}

type UpdateContactMessage struct {
	FullName    *string        `json:"fullName" validate:"omitempty,min=1"`
	Email       *string        `json:"email" validate:"omitempty,email"`
	PhoneNumber *string        `json:"phoneNumber" validate:"omitempty,min=1"`
	Subject     *string        `json:"subject" validate:"omitempty,min=1"`
	Message     *string        `json:"message" validate:"omitempty,min=1"`
	Status      *ContactStatus `json:"status" validate:"omitempty,oneof=pending in_progress resolved closed"`
}

func (u UpdateContactMessage) Apply(m *ContactMessage) {
	setIf(&m.FullName, u.FullName)
	setIf(&m.Email, u.Email)
	setIf(&m.PhoneNumber, u.PhoneNumber)
	setIf(&m.Subject, u.Subject)
	setIf(&m.Message, u.Message)
	setIf(&m.Status, u.Status)
}
