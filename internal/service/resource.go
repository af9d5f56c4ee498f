package service

import (
	"context"
	"errors"

	"github.com/KianJanloo/burger-cafe-back/internal/repository"
)

// ErrInvalidStatus is returned when a status outside the resource's enum is set.
var ErrInvalidStatus = errors.New("invalid status")

// Repository is the storage contract every resource service builds on.
// *repository.Store satisfies it.
type Repository[T any] interface {
	Create(ctx context.Context, record *T) error
	List(ctx context.Context, conds ...repository.Condition) ([]*T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Modify(ctx context.Context, id int64, mutate func(*T) error) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// Command builds a new record from a validated request.
type Command[T any] interface {
	Build() *T
}

// Patch merges a partial update onto a record.
type Patch[T any] interface {
	Apply(*T)
}

// Hook runs against a record before it is written.
type Hook[T any] func(ctx context.Context, record *T) error

// ResourceOption configures a Resource.
type ResourceOption[T any] func(*hooks[T])

type hooks[T any] struct {
	beforeCreate []Hook[T]
	beforeSave   []Hook[T]
}

// BeforeCreate registers a hook that runs once, when a record is first created.
func BeforeCreate[T any](h Hook[T]) ResourceOption[T] {
	return func(hs *hooks[T]) { hs.beforeCreate = append(hs.beforeCreate, h) }
}

// BeforeSave registers a hook that runs before every create and update.
// Derived fields belong here.
func BeforeSave[T any](h Hook[T]) ResourceOption[T] {
	return func(hs *hooks[T]) { hs.beforeSave = append(hs.beforeSave, h) }
}

// Resource implements create, list, get, update and delete for one record type.
type Resource[T any, C Command[T], P Patch[T]] struct {
	repo  Repository[T]
	hooks hooks[T]
}

func NewResource[T any, C Command[T], P Patch[T]](repo Repository[T], opts ...ResourceOption[T]) *Resource[T, C, P] {
	r := &Resource[T, C, P]{repo: repo}
	for _, opt := range opts {
		opt(&r.hooks)
	}
	return r
}

func (r *Resource[T, C, P]) Create(ctx context.Context, cmd C) (*T, error) {
	record := cmd.Build()
	if err := runHooks(ctx, record, r.hooks.beforeCreate); err != nil {
		return nil, err
	}
	if err := runHooks(ctx, record, r.hooks.beforeSave); err != nil {
		return nil, err
	}
	if err := r.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *Resource[T, C, P]) List(ctx context.Context) ([]*T, error) {
	return r.repo.List(ctx)
}

func (r *Resource[T, C, P]) Get(ctx context.Context, id int64) (*T, error) {
	return r.repo.Get(ctx, id)
}

// Update applies patch to the stored record. Fields absent from patch keep
// their value; the last concurrent writer wins.
func (r *Resource[T, C, P]) Update(ctx context.Context, id int64, patch P) (*T, error) {
	return r.repo.Modify(ctx, id, func(record *T) error {
		patch.Apply(record)
		return runHooks(ctx, record, r.hooks.beforeSave)
	})
}

func (r *Resource[T, C, P]) Delete(ctx context.Context, id int64) error {
	return r.repo.Delete(ctx, id)
}

func runHooks[T any](ctx context.Context, record *T, hs []Hook[T]) error {
	for _, h := range hs {
		if err := h(ctx, record); err != nil {
			return err
		}
	}
	return nil
}
