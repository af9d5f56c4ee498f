package repository

import (
	"context"
	"database/sql"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
)

var contactSchema = Schema[domain.ContactMessage]{
	Resource: "contact message",
	Table:    "contact_us",
	Columns: []string{
		"full_name", "email", "phone_number", "subject", "message", "status", "created_at", "updated_at",
	},
	Model: func(m *domain.ContactMessage) *domain.Model { return &m.Model },
	Fields: func(m *domain.ContactMessage) []any {
		return []any{m.FullName, m.Email, m.PhoneNumber, m.Subject, m.Message, string(m.Status), m.CreatedAt, m.UpdatedAt}
	},
	Targets: func(m *domain.ContactMessage) []any {
		return []any{&m.ID, &m.FullName, &m.Email, &m.PhoneNumber, &m.Subject, &m.Message, &m.Status, &m.CreatedAt, &m.UpdatedAt}
	},
}

// ContactRepository stores contact-us messages.
type ContactRepository struct {
	*Store[domain.ContactMessage]
}

func NewContactRepository(db *sql.DB, opts ...StoreOption) *ContactRepository {
	return &ContactRepository{Store: NewStore(db, contactSchema, opts...)}
}

func (r *ContactRepository) FindByStatus(ctx context.Context, status domain.ContactStatus) ([]*domain.ContactMessage, error) {
	return r.List(ctx, Eq("status", string(status)))
}
