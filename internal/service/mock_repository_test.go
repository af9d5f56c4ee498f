package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
	"github.com/KianJanloo/burger-cafe-back/internal/events"
	"github.com/KianJanloo/burger-cafe-back/internal/repository"
)

// memoryRepository is an in-memory stand-in for repository.Store. Records
// are copied in and out so callers cannot mutate stored state.
type memoryRepository[T any] struct {
	mu       sync.Mutex
	resource string
	model    func(*T) *domain.Model
	records  map[int64]T
	nextID   int64
	now      func() time.Time
}

func newMemoryRepository[T any](resource string, model func(*T) *domain.Model) *memoryRepository[T] {
	return &memoryRepository[T]{
		resource: resource,
		model:    model,
		records:  make(map[int64]T),
		now:      time.Now,
	}
}

func (m *memoryRepository[T]) Create(_ context.Context, record *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	md := m.model(record)
	md.ID = m.nextID
	md.CreatedAt = m.now()
	md.UpdatedAt = md.CreatedAt
	m.records[md.ID] = *record
	return nil
}

func (m *memoryRepository[T]) List(_ context.Context, _ ...repository.Condition) ([]*T, error) {
	return m.filter(func(*T) bool { return true }), nil
}

func (m *memoryRepository[T]) filter(keep func(*T) bool) []*T {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]int64, 0, len(m.records))
	for id := range m.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*T, 0)
	for _, id := range ids {
		r := m.records[id]
		if keep(&r) {
			out = append(out, &r)
		}
	}
	return out
}

func (m *memoryRepository[T]) Get(_ context.Context, id int64) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	if !ok {
		return nil, &repository.NotFoundError{Resource: m.resource}
	}
	return &r, nil
}

func (m *memoryRepository[T]) Modify(ctx context.Context, id int64, mutate func(*T) error) (*T, error) {
	record, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mutate(record); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.model(record).UpdatedAt = m.now()
	m.records[id] = *record
	return record, nil
}

func (m *memoryRepository[T]) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return &repository.NotFoundError{Resource: m.resource}
	}
	delete(m.records, id)
	return nil
}

type mockMenuRepository struct {
	*memoryRepository[domain.MenuItem]
}

func newMockMenuRepository() *mockMenuRepository {
	return &mockMenuRepository{newMemoryRepository("menu item", func(m *domain.MenuItem) *domain.Model { return &m.Model })}
}

func (r *mockMenuRepository) Find(_ context.Context, f repository.MenuFilter) ([]*domain.MenuItem, error) {
	return r.filter(func(m *domain.MenuItem) bool {
		return (f.Category == nil || m.Category == *f.Category) &&
			(f.Available == nil || m.IsAvailable == *f.Available)
	}), nil
}

type mockCartRepository struct {
	*memoryRepository[domain.CartLine]
}

func newMockCartRepository() *mockCartRepository {
	return &mockCartRepository{newMemoryRepository("cart item", func(l *domain.CartLine) *domain.Model { return &l.Model })}
}

func (r *mockCartRepository) FindBySession(_ context.Context, sessionID string) ([]*domain.CartLine, error) {
	return r.filter(func(l *domain.CartLine) bool { return l.SessionID == sessionID }), nil
}

func (r *mockCartRepository) ClearSession(ctx context.Context, sessionID string) (int64, error) {
	lines, _ := r.FindBySession(ctx, sessionID)
	for _, l := range lines {
		_ = r.Delete(ctx, l.ID)
	}
	return int64(len(lines)), nil
}

type mockOrderRepository struct {
	*memoryRepository[domain.Order]
	// collisions makes the next N creates fail as duplicates.
	collisions int
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{memoryRepository: newMemoryRepository("order", func(o *domain.Order) *domain.Model { return &o.Model })}
}

func (r *mockOrderRepository) Create(ctx context.Context, o *domain.Order) error {
	if r.collisions > 0 {
		r.collisions--
		return repository.ErrDuplicate
	}
	return r.memoryRepository.Create(ctx, o)
}

func (r *mockOrderRepository) Find(_ context.Context, f repository.OrderFilter) ([]*domain.Order, error) {
	return r.filter(func(o *domain.Order) bool {
		return (f.Status == nil || o.Status == *f.Status) &&
			(f.OrderType == nil || o.OrderType == *f.OrderType)
	}), nil
}

func (r *mockOrderRepository) FindByOrderNumber(_ context.Context, number string) (*domain.Order, error) {
	found := r.filter(func(o *domain.Order) bool { return o.OrderNumber == number })
	if len(found) == 0 {
		return nil, &repository.NotFoundError{Resource: "order"}
	}
	return found[0], nil
}

type mockGalleryItemRepository struct {
	*memoryRepository[domain.GalleryItem]
}

func newMockGalleryItemRepository() *mockGalleryItemRepository {
	return &mockGalleryItemRepository{newMemoryRepository("gallery item", func(i *domain.GalleryItem) *domain.Model { return &i.Model })}
}

func (r *mockGalleryItemRepository) FindByCategory(_ context.Context, categoryID int64) ([]*domain.GalleryItem, error) {
	return r.filter(func(i *domain.GalleryItem) bool { return i.CategoryID == categoryID }), nil
}

type mockReservationRepository struct {
	*memoryRepository[domain.Reservation]
}

func newMockReservationRepository() *mockReservationRepository {
	return &mockReservationRepository{newMemoryRepository("reservation", func(r *domain.Reservation) *domain.Model { return &r.Model })}
}

func (r *mockReservationRepository) FindByDate(_ context.Context, date domain.Date) ([]*domain.Reservation, error) {
	return r.filter(func(res *domain.Reservation) bool { return res.Date.Equal(date.Time) }), nil
}

type mockFAQRepository struct {
	*memoryRepository[domain.FAQ]
}

func newMockFAQRepository() *mockFAQRepository {
	return &mockFAQRepository{newMemoryRepository("faq", func(f *domain.FAQ) *domain.Model { return &f.Model })}
}

func (r *mockFAQRepository) ListActive(_ context.Context) ([]*domain.FAQ, error) {
	return r.filter(func(f *domain.FAQ) bool { return f.IsActive }), nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
	err    error
}

func (p *recordingPublisher) PublishOrderEvent(_ context.Context, e events.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e.Type+":"+e.Status)
	return p.err
}
