package transport

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
	"github.com/KianJanloo/burger-cafe-back/internal/repository"
)

type fakeRepo[T any] struct {
	mu       sync.Mutex
	resource string
	model    func(*T) *domain.Model
	records  map[int64]T
	nextID   int64
}

func newFakeRepo[T any](resource string, model func(*T) *domain.Model) *fakeRepo[T] {
	return &fakeRepo[T]{resource: resource, model: model, records: map[int64]T{}}
}

func (f *fakeRepo[T]) Create(_ context.Context, record *T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	m := f.model(record)
	m.ID = f.nextID
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = m.CreatedAt
	f.records[m.ID] = *record
	return nil
}

func (f *fakeRepo[T]) List(_ context.Context, _ ...repository.Condition) ([]*T, error) {
	return f.where(func(*T) bool { return true }), nil
}

func (f *fakeRepo[T]) where(keep func(*T) bool) []*T {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int64, 0, len(f.records))
	for id := range f.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := []*T{}
	for _, id := range ids {
		r := f.records[id]
		if keep(&r) {
			out = append(out, &r)
		}
	}
	return out
}

func (f *fakeRepo[T]) Get(_ context.Context, id int64) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[id]
	if !ok {
		return nil, &repository.NotFoundError{Resource: f.resource}
	}
	return &r, nil
}

func (f *fakeRepo[T]) Modify(ctx context.Context, id int64, mutate func(*T) error) (*T, error) {
	r, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mutate(r); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.model(r).UpdatedAt = time.Now().UTC()
	f.records[id] = *r
	return r, nil
}

func (f *fakeRepo[T]) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[id]; !ok {
		return &repository.NotFoundError{Resource: f.resource}
	}
	delete(f.records, id)
	return nil
}

type fakeMenuRepo struct {
	*fakeRepo[domain.MenuItem]
}

func (r fakeMenuRepo) Find(_ context.Context, f repository.MenuFilter) ([]*domain.MenuItem, error) {
	return r.where(func(m *domain.MenuItem) bool {
		return (f.Category == nil || m.Category == *f.Category) &&
			(f.Available == nil || m.IsAvailable == *f.Available)
	}), nil
}

type fakeCartRepo struct {
	*fakeRepo[domain.CartLine]
}

func (r fakeCartRepo) FindBySession(_ context.Context, sessionID string) ([]*domain.CartLine, error) {
	return r.where(func(l *domain.CartLine) bool { return l.SessionID == sessionID }), nil
}

func (r fakeCartRepo) ClearSession(ctx context.Context, sessionID string) (int64, error) {
	lines, _ := r.FindBySession(ctx, sessionID)
	for _, l := range lines {
		_ = r.Delete(ctx, l.ID)
	}
	return int64(len(lines)), nil
}

type fakeOrderRepo struct {
	*fakeRepo[domain.Order]
}

func (r fakeOrderRepo) Find(_ context.Context, f repository.OrderFilter) ([]*domain.Order, error) {
	return r.where(func(o *domain.Order) bool {
		return (f.Status == nil || o.Status == *f.Status) &&
			(f.OrderType == nil || o.OrderType == *f.OrderType)
	}), nil
}

func (r fakeOrderRepo) FindByOrderNumber(_ context.Context, number string) (*domain.Order, error) {
	found := r.where(func(o *domain.Order) bool { return o.OrderNumber == number })
	if len(found) == 0 {
		return nil, &repository.NotFoundError{Resource: "order"}
	}
	return found[0], nil
}

type fakeFAQRepo struct {
	*fakeRepo[domain.FAQ]
}

func (r fakeFAQRepo) ListActive(context.Context) ([]*domain.FAQ, error) {
	return r.where(func(f *domain.FAQ) bool { return f.IsActive }), nil
}

type fakeGalleryItemRepo struct {
	*fakeRepo[domain.GalleryItem]
}

func (r fakeGalleryItemRepo) FindByCategory(_ context.Context, categoryID int64) ([]*domain.GalleryItem, error) {
	return r.where(func(i *domain.GalleryItem) bool { return i.CategoryID == categoryID }), nil
}

type fakeReservationRepo struct {
	*fakeRepo[domain.Reservation]
}

func (r fakeReservationRepo) FindByDate(_ context.Context, date domain.Date) ([]*domain.Reservation, error) {
	return r.where(func(res *domain.Reservation) bool { return res.Date.Equal(date.Time) }), nil
}

type fakeContactRepo struct {
	*fakeRepo[domain.ContactMessage]
}

func (r fakeContactRepo) FindByStatus(_ context.Context, status domain.ContactStatus) ([]*domain.ContactMessage, error) {
	return r.where(func(m *domain.ContactMessage) bool { return m.Status == status }), nil
}
