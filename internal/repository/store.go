package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
	"github.com/KianJanloo/burger-cafe-back/internal/metrics"
)

// Schema maps a record type onto its table.
//
// Columns lists every column except id, in the order Fields returns values
// and Targets returns scan destinations (Targets starts with the id).
type Schema[T any] struct {
	Resource string
	Table    string
	Columns  []string
	OrderBy  string
	Model    func(*T) *domain.Model
	Fields   func(*T) []any
	Targets  func(*T) []any
}

// Condition is an equality predicate on one column.
type Condition struct {
	Column string
	Value  any
}

// Eq builds a Condition.
func Eq(column string, value any) Condition {
	return Condition{Column: column, Value: value}
}

// Store is a table-backed collection of records of one type.
// Updates are read-merge-write: concurrent updates of the same row are
// last-writer-wins.
type Store[T any] struct {
	db     *sql.DB
	schema Schema[T]
	now    func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*storeOptions)

type storeOptions struct {
	now func() time.Time
}

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(o *storeOptions) { o.now = now }
}

// NewStore panics if the schema's column list and accessors disagree.
func NewStore[T any](db *sql.DB, schema Schema[T], opts ...StoreOption) *Store[T] {
	o := storeOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	var probe T
	if n := len(schema.Fields(&probe)); n != len(schema.Columns) {
		panic(fmt.Sprintf("repository: %s schema has %d columns but %d fields", schema.Table, len(schema.Columns), n))
	}
	if n := len(schema.Targets(&probe)); n != len(schema.Columns)+1 {
		panic(fmt.Sprintf("repository: %s schema has %d columns but %d scan targets", schema.Table, len(schema.Columns), n))
	}
	if schema.OrderBy == "" {
		schema.OrderBy = "id ASC"
	}
	return &Store[T]{db: db, schema: schema, now: o.now}
}

func (s *Store[T]) selectClause() string {
	return "SELECT id, " + strings.Join(s.schema.Columns, ", ") + " FROM " + s.schema.Table
}

// Create inserts record, assigning its id and both timestamps.
func (s *Store[T]) Create(ctx context.Context, record *T) error {
	defer metrics.ObserveDBQuery(s.schema.Table, "insert", time.Now())

	now := s.now().UTC()
	m := s.schema.Model(record)
	m.CreatedAt = now
	m.UpdatedAt = now

	placeholders := make([]string, len(s.schema.Columns))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		s.schema.Table, strings.Join(s.schema.Columns, ", "), strings.Join(placeholders, ", "))

	if err := s.db.QueryRowContext(ctx, query, s.schema.Fields(record)...).Scan(&m.ID); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to create %s: %w", s.schema.Resource, ErrDuplicate)
		}
		return fmt.Errorf("failed to create %s: %w", s.schema.Resource, err)
	}
	return nil
}

// Get returns the record with the given id or a NotFoundError.
func (s *Store[T]) Get(ctx context.Context, id int64) (*T, error) {
	return s.FindOne(ctx, Eq("id", id))
}

// FindOne returns the first record matching every condition.
func (s *Store[T]) FindOne(ctx context.Context, conds ...Condition) (*T, error) {
	defer metrics.ObserveDBQuery(s.schema.Table, "select", time.Now())

	where, args := buildWhere(conds)
	query := s.selectClause() + where + " ORDER BY " + s.schema.OrderBy + " LIMIT 1"

	record := new(T)
	err := s.db.QueryRowContext(ctx, query, args...).Scan(s.schema.Targets(record)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(s.schema.Resource)
		}
		return nil, fmt.Errorf("failed to find %s: %w", s.schema.Resource, err)
	}
	return record, nil
}

// List returns every record matching the conditions in the schema's order.
// With no conditions the whole table is returned.
func (s *Store[T]) List(ctx context.Context, conds ...Condition) ([]*T, error) {
	defer metrics.ObserveDBQuery(s.schema.Table, "select", time.Now())

	where, args := buildWhere(conds)
	query := s.selectClause() + where + " ORDER BY " + s.schema.OrderBy

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.schema.Resource, err)
	}
	defer rows.Close()

	records := make([]*T, 0)
	for rows.Next() {
		record := new(T)
		if err := rows.Scan(s.schema.Targets(record)...); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", s.schema.Resource, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", s.schema.Resource, err)
	}
	return records, nil
}

// Update writes every column of record and refreshes UpdatedAt.
func (s *Store[T]) Update(ctx context.Context, record *T) error {
	defer metrics.ObserveDBQuery(s.schema.Table, "update", time.Now())

	m := s.schema.Model(record)
	m.UpdatedAt = s.now().UTC()

	sets := make([]string, len(s.schema.Columns))
	for i, col := range s.schema.Columns {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	args := append(s.schema.Fields(record), m.ID)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		s.schema.Table, strings.Join(sets, ", "), len(args))

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to update %s: %w", s.schema.Resource, ErrDuplicate)
		}
		return fmt.Errorf("failed to update %s: %w", s.schema.Resource, err)
	}
	return checkAffected(result, s.schema.Resource)
}

// Modify loads the record, applies mutate and writes it back.
func (s *Store[T]) Modify(ctx context.Context, id int64, mutate func(*T) error) (*T, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mutate(record); err != nil {
		return nil, err
	}
	if err := s.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes the record permanently.
func (s *Store[T]) Delete(ctx context.Context, id int64) error {
	defer metrics.ObserveDBQuery(s.schema.Table, "delete", time.Now())

	query := "DELETE FROM " + s.schema.Table + " WHERE id = $1"
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.schema.Resource, err)
	}
	return checkAffected(result, s.schema.Resource)
}

// DeleteWhere removes every matching record and returns how many went.
func (s *Store[T]) DeleteWhere(ctx context.Context, conds ...Condition) (int64, error) {
	defer metrics.ObserveDBQuery(s.schema.Table, "delete", time.Now())

	where, args := buildWhere(conds)
	result, err := s.db.ExecContext(ctx, "DELETE FROM "+s.schema.Table+where, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s: %w", s.schema.Resource, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

func checkAffected(result sql.Result, resource string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return notFound(resource)
	}
	return nil
}

func buildWhere(conds []Condition) (string, []any) {
	if len(conds) == 0 {
		return "", nil
	}
	clauses := make([]string, len(conds))
	args := make([]any, len(conds))
	for i, c := range conds {
		clauses[i] = fmt.Sprintf("%s = $%d", c.Column, i+1)
		args[i] = c.Value
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
