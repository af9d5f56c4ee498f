package repository

import (
	"context"
	"database/sql"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
)

var reservationSchema = Schema[domain.Reservation]{
	Resource: "reservation",
	Table:    "reservation",
	Columns: []string{
		"full_name", "phone_number", "email", "date", "time",
		"customer_count", "special_request", "status", "created_at", "updated_at",
	},
	Model: func(r *domain.Reservation) *domain.Model { return &r.Model },
	Fields: func(r *domain.Reservation) []any {
		return []any{
			r.FullName, r.PhoneNumber, r.Email, r.Date, r.Time,
			r.CustomerCount, r.SpecialRequest, string(r.Status), r.CreatedAt, r.UpdatedAt,
		}
	},
	Targets: func(r *domain.Reservation) []any {
		return []any{
			&r.ID, &r.FullName, &r.PhoneNumber, &r.Email, &r.Date, &r.Time,
			&r.CustomerCount, &r.SpecialRequest, &r.Status, &r.CreatedAt, &r.UpdatedAt,
		}
	},
}

// ReservationRepository stores table reservations.
type ReservationRepository struct {
	*Store[domain.Reservation]
}

func NewReservationRepository(db *sql.DB, opts ...StoreOption) *ReservationRepository {
	return &ReservationRepository{Store: NewStore(db, reservationSchema, opts...)}
}

// FindByDate lists reservations on exactly that date.
func (r *ReservationRepository) FindByDate(ctx context.Context, date domain.Date) ([]*domain.Reservation, error) {
	return r.List(ctx, Eq("date", date))
}
