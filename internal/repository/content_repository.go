package repository

import (
	"database/sql"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
)

// Stores for resources that only need the plain CRUD contract.

var commentSchema = Schema[domain.Comment]{
	Resource: "comment",
	Table:    "comments",
	Columns:  []string{"content", "rating", "author_name", "author_job", "author_image", "created_at", "updated_at"},
	Model:    func(c *domain.Comment) *domain.Model { return &c.Model },
	Fields: func(c *domain.Comment) []any {
		return []any{c.Content, c.Rating, c.AuthorName, c.AuthorJob, c.AuthorImage, c.CreatedAt, c.UpdatedAt}
	},
	Targets: func(c *domain.Comment) []any {
		return []any{&c.ID, &c.Content, &c.Rating, &c.AuthorName, &c.AuthorJob, &c.AuthorImage, &c.CreatedAt, &c.UpdatedAt}
	},
}

func NewCommentRepository(db *sql.DB, opts ...StoreOption) *Store[domain.Comment] {
	return NewStore(db, commentSchema, opts...)
}

var footerSchema = Schema[domain.Footer]{
	Resource: "footer",
	Table:    "footer",
	Columns: []string{
		"phone_number", "email", "address", "work_time", "current_location",
		"instagram", "facebook", "twitter", "created_at", "updated_at",
	},
	Model: func(f *domain.Footer) *domain.Model { return &f.Model },
	Fields: func(f *domain.Footer) []any {
		return []any{
			f.PhoneNumber, f.Email, f.Address, f.WorkTime, f.CurrentLocation,
			f.Instagram, f.Facebook, f.Twitter, f.CreatedAt, f.UpdatedAt,
		}
	},
	Targets: func(f *domain.Footer) []any {
		return []any{
			&f.ID, &f.PhoneNumber, &f.Email, &f.Address, &f.WorkTime, &f.CurrentLocation,
			&f.Instagram, &f.Facebook, &f.Twitter, &f.CreatedAt, &f.UpdatedAt,
		}
	},
}

func NewFooterRepository(db *sql.DB, opts ...StoreOption) *Store[domain.Footer] {
	return NewStore(db, footerSchema, opts...)
}

var cafeDetailsSchema = Schema[domain.CafeDetails]{
	Resource: "cafe details",
	Table:    "cafe_details",
	Columns:  []string{"kind_of_burgers", "experience", "rate", "customers", "created_at", "updated_at"},
	Model:    func(d *domain.CafeDetails) *domain.Model { return &d.Model },
	Fields: func(d *domain.CafeDetails) []any {
		return []any{d.KindOfBurgers, d.Experience, d.Rate, d.Customers, d.CreatedAt, d.UpdatedAt}
	},
	Targets: func(d *domain.CafeDetails) []any {
		return []any{&d.ID, &d.KindOfBurgers, &d.Experience, &d.Rate, &d.Customers, &d.CreatedAt, &d.UpdatedAt}
	},
}

func NewCafeDetailsRepository(db *sql.DB, opts ...StoreOption) *Store[domain.CafeDetails] {
	return NewStore(db, cafeDetailsSchema, opts...)
}

var storySchema = Schema[domain.Story]{
	Resource: "story",
	Table:    "about_us",
	Columns:  []string{"story", "created_at", "updated_at"},
	Model:    func(s *domain.Story) *domain.Model { return &s.Model },
	Fields:   func(s *domain.Story) []any { return []any{s.Story, s.CreatedAt, s.UpdatedAt} },
	Targets:  func(s *domain.Story) []any { return []any{&s.ID, &s.Story, &s.CreatedAt, &s.UpdatedAt} },
}

func NewStoryRepository(db *sql.DB, opts ...StoreOption) *Store[domain.Story] {
	return NewStore(db, storySchema, opts...)
}

var teamMemberSchema = Schema[domain.TeamMember]{
	Resource: "team member",
	Table:    "team_member",
	Columns:  []string{"name", "position", "experience", "skills", "image", "created_at", "updated_at"},
	Model:    func(m *domain.TeamMember) *domain.Model { return &m.Model },
	Fields: func(m *domain.TeamMember) []any {
		return []any{m.Name, m.Position, m.Experience, m.Skills, m.Image, m.CreatedAt, m.UpdatedAt}
	},
	Targets: func(m *domain.TeamMember) []any {
		return []any{&m.ID, &m.Name, &m.Position, &m.Experience, &m.Skills, &m.Image, &m.CreatedAt, &m.UpdatedAt}
	},
}

func NewTeamMemberRepository(db *sql.DB, opts ...StoreOption) *Store[domain.TeamMember] {
	return NewStore(db, teamMemberSchema, opts...)
}
