package domain

// FAQ is a question/answer pair. Order is the display position.
type FAQ struct {
	Model
	Question string `json:"question" db:"question"`
	Answer   string `json:"answer" db:"answer"`
	Order    int    `json:"order" db:"sort_order"`
	IsActive bool   `json:"isActive" db:"is_active"`
}

type CreateFAQ struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Order    *int   `json:"order"`
	IsActive *bool  `json:"isActive"`
}

func (c CreateFAQ) Build() *FAQ {
	faq := &FAQ{Question: c.Question, Answer: c.Answer, IsActive: true}
	setIf(&faq.Order, c.Order)
	setIf(&faq.IsActive, c.IsActive)
	return faq
}

type UpdateFAQ struct {
	Question *string `json:"question" validate:"omitempty,min=1"`
	Answer   *string `json:"answer" validate:"omitempty,min=1"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

func (u UpdateFAQ) Apply(f *FAQ) {
	setIf(&f.Question, u.Question)
	setIf(&f.Answer, u.Answer)
	setIf(&f.Order, u.Order)
	setIf(&f.IsActive, u.IsActive)
}
